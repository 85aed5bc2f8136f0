package approve_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/reservation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, t reservationRepo.Transition) error
}

// AdmissionChecker повторная проверка пересечений под блокировкой комнаты
type AdmissionChecker interface {
	WithRoomLock(ctx context.Context, roomID int64, fn func(ctx context.Context) error) error
	CheckApproval(ctx context.Context, reservation *domain.Reservation) error
	Now() time.Time
}

// PermissionGuard проверка прав пользователя
type PermissionGuard interface {
	Require(ctx context.Context, userID int64, code string) error
}

// AuditRecorder запись событий аудита
type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry)
}

// MetricsObserver учёт переходов статусов
type MetricsObserver interface {
	ObserveTransition(action string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
