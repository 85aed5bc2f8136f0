package admission

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// RoomRepository чтение комнаты вместе с флагом здания
type RoomRepository interface {
	GetWithBuilding(ctx context.Context, id int64) (*domain.RoomWithBuilding, error)
}

// ReservationRepository часть репозитория бронирований, нужная для проверки пересечений
type ReservationRepository interface {
	LockRoom(ctx context.Context, roomID int64) error
	FindOverlapping(ctx context.Context, roomID int64, interval domain.Interval, excludeID *int64) ([]*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// BanChecker реестр банов
type BanChecker interface {
	IsBanned(ctx context.Context, userID int64, now time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsObserver учёт решений проверки допуска
type MetricsObserver interface {
	ObserveAdmission(result string)
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
