package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/pgerr"
	"github.com/m04kA/SMC-FacilityService/pkg/psqlbuilder"
)

var buildingColumns = []string{
	"id",
	"name",
	"enabled",
	"sort",
	"remark",
	"created_at",
	"updated_at",
}

// BuildingRepository репозиторий зданий.
// Здания удаляются мягко (deleted_at), чтобы история бронирований сохраняла ссылки
type BuildingRepository struct {
	db DBExecutor
}

// NewBuildingRepository создает новый экземпляр репозитория зданий
func NewBuildingRepository(db DBExecutor) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// Create создает здание
func (r *BuildingRepository) Create(ctx context.Context, building *domain.Building) (*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("buildings").
		Columns("name", "enabled", "sort", "remark").
		Values(building.Name, building.Enabled, building.Sort, building.Remark).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&building.ID,
		&building.CreatedAt,
		&building.UpdatedAt,
	)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return building, nil
}

// GetByID получает здание по ID
func (r *BuildingRepository) GetByID(ctx context.Context, id int64) (*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(buildingColumns...).
		From("buildings").
		Where(squirrel.Eq{"id": id, "deleted_at": nil})

	// Внутри транзакции строка блокируется, чтобы удаление и дочерние записи не разошлись
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	building, err := scanBuilding(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBuildingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan building: %w", ErrScanRow, err)
	}

	return building, nil
}

// List получает здания, отсортированные по sort и id
func (r *BuildingRepository) List(ctx context.Context, includeDisabled bool) ([]*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(buildingColumns...).
		From("buildings").
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("sort ASC", "id ASC")

	if !includeDisabled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"enabled": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	buildings := make([]*domain.Building, 0)
	for rows.Next() {
		building, err := scanBuilding(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		buildings = append(buildings, building)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return buildings, nil
}

// Update обновляет здание целиком (name, enabled, sort, remark)
func (r *BuildingRepository) Update(ctx context.Context, building *domain.Building) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("buildings").
		Set("name", building.Name).
		Set("enabled", building.Enabled).
		Set("sort", building.Sort).
		Set("remark", building.Remark).
		Set("updated_at", building.UpdatedAt).
		Where(squirrel.Eq{"id": building.ID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return affectedOrNotFound(result, "Update", ErrBuildingNotFound)
}

// SoftDelete помечает здание удалённым
func (r *BuildingRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("buildings").
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %w", ErrExecQuery, err)
	}

	return affectedOrNotFound(result, "SoftDelete", ErrBuildingNotFound)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBuilding(row rowScanner) (*domain.Building, error) {
	var building domain.Building
	err := row.Scan(
		&building.ID,
		&building.Name,
		&building.Enabled,
		&building.Sort,
		&building.Remark,
		&building.CreatedAt,
		&building.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func affectedOrNotFound(result sql.Result, op string, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
