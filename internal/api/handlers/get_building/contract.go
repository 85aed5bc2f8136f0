package get_building

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
)

// Service сервис каталога
type Service interface {
	GetBuilding(ctx context.Context, id int64) (*models.BuildingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
