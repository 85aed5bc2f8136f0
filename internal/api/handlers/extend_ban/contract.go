package extend_ban

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/bans/models"
)

// Service сервис банов
type Service interface {
	Extend(ctx context.Context, req *models.ExtendBanRequest) (*models.ExtendBanResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
