package revoke_ban

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/bans/models"
)

// Service сервис банов
type Service interface {
	Revoke(ctx context.Context, req *models.RevokeBanRequest) (*models.BanResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
