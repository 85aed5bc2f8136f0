package reservations

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
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, t reservationRepo.Transition) error
}

// PermissionGuard проверка прав пользователя
type PermissionGuard interface {
	Has(ctx context.Context, userID int64, code string) (bool, error)
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

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
