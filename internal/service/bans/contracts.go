package bans

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	banRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/ban"
)

// BanRepository интерфейс репозитория банов
type BanRepository interface {
	LockUser(ctx context.Context, userID int64) error
	Create(ctx context.Context, ban *domain.Ban) (*domain.Ban, error)
	GetByID(ctx context.Context, id int64) (*domain.Ban, error)
	GetActiveByUser(ctx context.Context, userID int64, now time.Time) (*domain.Ban, error)
	ListActive(ctx context.Context, now time.Time) ([]*domain.Ban, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Ban, error)
	Revoke(ctx context.Context, rev banRepo.Revocation) error
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
