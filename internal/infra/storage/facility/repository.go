package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/psqlbuilder"
)

const table = "facility_config"

// Repository репозиторий глобальной конфигурации бронирования комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию. Если строки нет, возвращает ErrConfigNotFound
func (r *Repository) Get(ctx context.Context) (*domain.FacilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"audit_required",
		"max_duration_hours",
		"updated_by",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.FacilityConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.AuditRequired,
		&cfg.MaxDurationHours,
		&cfg.UpdatedBy,
		&cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %w", ErrScanRow, err)
	}

	return &cfg, nil
}

// Upsert сохраняет конфигурацию целиком, создавая строку при её отсутствии
func (r *Repository) Upsert(ctx context.Context, cfg *domain.FacilityConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "audit_required", "max_duration_hours", "updated_by", "updated_at").
		Values(singletonID, cfg.AuditRequired, cfg.MaxDurationHours, cfg.UpdatedBy, cfg.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"audit_required = EXCLUDED.audit_required, " +
			"max_duration_hours = EXCLUDED.max_duration_hours, " +
			"updated_by = EXCLUDED.updated_by, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}
