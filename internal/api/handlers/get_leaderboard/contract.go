package get_leaderboard

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/usage/models"
)

// Service сервис статистики
type Service interface {
	Leaderboard(ctx context.Context, req *models.LeaderboardRequest) (*models.LeaderboardResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
