package facility

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// ConfigRepository интерфейс репозитория глобальной конфигурации
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.FacilityConfig, error)
	Upsert(ctx context.Context, cfg *domain.FacilityConfig) error
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
