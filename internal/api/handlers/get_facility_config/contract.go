package get_facility_config

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/facility/models"
)

// Service сервис конфигурации
type Service interface {
	GetConfig(ctx context.Context) (*models.ConfigResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
