package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-FacilityService/internal/usecase/create_reservation"
)

// CreateReservationUseCase сценарий создания бронирования
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*models.ReservationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
