package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// BuildingRepository интерфейс репозитория зданий
type BuildingRepository interface {
	Create(ctx context.Context, building *domain.Building) (*domain.Building, error)
	GetByID(ctx context.Context, id int64) (*domain.Building, error)
	List(ctx context.Context, includeDisabled bool) ([]*domain.Building, error)
	Update(ctx context.Context, building *domain.Building) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
	ListFloors(ctx context.Context, buildingID int64) ([]int, error)
	CountByBuilding(ctx context.Context, buildingID int64) (int, error)
	Update(ctx context.Context, room *domain.Room) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
}

// ReservationRepository часть репозитория бронирований, нужная для удаления комнаты
type ReservationRepository interface {
	LockRoom(ctx context.Context, roomID int64) error
	CountActiveByRoom(ctx context.Context, roomID int64) (int, error)
}

// PermissionGuard проверка прав пользователя
type PermissionGuard interface {
	Require(ctx context.Context, userID int64, code string) error
}

// AuditRecorder запись событий аудита
type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry)
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
