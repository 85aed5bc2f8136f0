package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

// Service сервис бронирований
type Service interface {
	GetDetail(ctx context.Context, viewerID, reservationID int64) (*models.ReservationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
