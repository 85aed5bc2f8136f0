package create_building

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
)

// Service сервис каталога
type Service interface {
	CreateBuilding(ctx context.Context, req *models.CreateBuildingRequest) (*models.BuildingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
