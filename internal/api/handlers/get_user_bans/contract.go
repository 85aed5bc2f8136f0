package get_user_bans

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/bans/models"
)

// Service сервис банов
type Service interface {
	ListHistory(ctx context.Context, actorID, userID int64) (*models.BanListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
