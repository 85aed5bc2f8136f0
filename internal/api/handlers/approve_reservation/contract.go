package approve_reservation

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
	approveReservation "github.com/m04kA/SMC-FacilityService/internal/usecase/approve_reservation"
)

// ApproveReservationUseCase сценарий утверждения заявки
type ApproveReservationUseCase interface {
	Execute(ctx context.Context, req *approveReservation.Request) (*models.ReservationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
