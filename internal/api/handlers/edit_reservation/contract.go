package edit_reservation

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
	editReservation "github.com/m04kA/SMC-FacilityService/internal/usecase/edit_reservation"
)

// EditReservationUseCase сценарий изменения заявки
type EditReservationUseCase interface {
	Execute(ctx context.Context, req *editReservation.Request) (*models.ReservationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
