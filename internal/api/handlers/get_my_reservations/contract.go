package get_my_reservations

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

// Service сервис бронирований
type Service interface {
	ListMine(ctx context.Context, req *models.ListMineRequest) (*models.ReservationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
