package list_bans

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/bans/models"
)

// Service сервис банов
type Service interface {
	ListActive(ctx context.Context, actorID int64) (*models.BanListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
