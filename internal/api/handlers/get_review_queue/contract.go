package get_review_queue

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

// Service сервис бронирований
type Service interface {
	ListForReview(ctx context.Context, req *models.ListForReviewRequest) (*models.ReservationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
