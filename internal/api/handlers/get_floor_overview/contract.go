package get_floor_overview

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/usage/models"
)

// Service сервис статистики
type Service interface {
	FloorOverview(ctx context.Context, req *models.FloorOverviewRequest) (*models.FloorOverviewResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
