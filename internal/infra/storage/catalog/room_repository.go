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

var roomColumns = []string{
	"r.id",
	"r.building_id",
	"r.floor_no",
	"r.name",
	"r.capacity",
	"r.enabled",
	"r.sort",
	"r.remark",
	"r.created_at",
	"r.updated_at",
}

// RoomRepository репозиторий комнат
type RoomRepository struct {
	db DBExecutor
}

// NewRoomRepository создает новый экземпляр репозитория комнат
func NewRoomRepository(db DBExecutor) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create создает комнату
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("building_id", "floor_no", "name", "capacity", "enabled", "sort", "remark").
		Values(room.BuildingID, room.FloorNo, room.Name, room.Capacity, room.Enabled, room.Sort, room.Remark).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return nil, ErrDuplicateName
		case pgerr.IsForeignKeyViolation(err):
			return nil, ErrBuildingNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return room, nil
}

// GetByID получает комнату по ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		Where(squirrel.Eq{"r.id": id, "r.deleted_at": nil})

	// Внутри транзакции строка блокируется, чтобы удаление и дочерние записи не разошлись
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %w", ErrScanRow, err)
	}

	return room, nil
}

// GetWithBuilding получает комнату вместе с флагом доступности здания.
// Используется проверкой допуска бронирования
func (r *RoomRepository) GetWithBuilding(ctx context.Context, id int64) (*domain.RoomWithBuilding, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cols := append(append([]string{}, roomColumns...), "b.name", "b.enabled")
	query, args, err := psqlbuilder.Select(cols...).
		From("rooms r").
		Join("buildings b ON b.id = r.building_id").
		Where(squirrel.Eq{"r.id": id, "r.deleted_at": nil, "b.deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithBuilding - build select query: %v", ErrBuildQuery, err)
	}

	var result domain.RoomWithBuilding
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&result.ID,
		&result.BuildingID,
		&result.FloorNo,
		&result.Name,
		&result.Capacity,
		&result.Enabled,
		&result.Sort,
		&result.Remark,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.BuildingName,
		&result.BuildingEnabled,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithBuilding - scan room: %w", ErrScanRow, err)
	}

	return &result, nil
}

// List получает комнаты здания (опционально одного этажа)
func (r *RoomRepository) List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		Where(squirrel.Eq{"r.building_id": filter.BuildingID, "r.deleted_at": nil}).
		OrderBy("r.floor_no ASC", "r.sort ASC", "r.id ASC")

	if filter.FloorNo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.floor_no": *filter.FloorNo})
	}
	if !filter.IncludeDisabled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.enabled": true})
	}

	return r.queryRooms(ctx, selectBuilder, "List")
}

// GetByIDs получает комнаты по списку ID (включая отключённые)
func (r *RoomRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Room, error) {
	if len(ids) == 0 {
		return []*domain.Room{}, nil
	}

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		Where(squirrel.Eq{"r.id": ids}).
		OrderBy("r.id ASC")

	return r.queryRooms(ctx, selectBuilder, "GetByIDs")
}

// ListFloors возвращает номера этажей здания, на которых есть комнаты
func (r *RoomRepository) ListFloors(ctx context.Context, buildingID int64) ([]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT floor_no").
		From("rooms").
		Where(squirrel.Eq{"building_id": buildingID, "deleted_at": nil}).
		OrderBy("floor_no ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFloors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFloors - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	floors := make([]int, 0)
	for rows.Next() {
		var floor int
		if err := rows.Scan(&floor); err != nil {
			return nil, fmt.Errorf("%w: ListFloors - scan floor_no: %w", ErrScanRow, err)
		}
		floors = append(floors, floor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFloors - rows error: %w", ErrScanRow, err)
	}

	return floors, nil
}

// CountByBuilding считает неудалённые комнаты здания
func (r *RoomRepository) CountByBuilding(ctx context.Context, buildingID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rooms").
		Where(squirrel.Eq{"building_id": buildingID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByBuilding - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByBuilding - scan count: %w", ErrScanRow, err)
	}
	return count, nil
}

// Update обновляет комнату целиком
func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("floor_no", room.FloorNo).
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Set("enabled", room.Enabled).
		Set("sort", room.Sort).
		Set("remark", room.Remark).
		Set("updated_at", room.UpdatedAt).
		Where(squirrel.Eq{"id": room.ID, "deleted_at": nil}).
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

	return affectedOrNotFound(result, "Update", ErrRoomNotFound)
}

// SoftDelete помечает комнату удалённой
func (r *RoomRepository) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
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

	return affectedOrNotFound(result, "SoftDelete", ErrRoomNotFound)
}

func (r *RoomRepository) queryRooms(ctx context.Context, selectBuilder squirrel.SelectBuilder, op string) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return rooms, nil
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.ID,
		&room.BuildingID,
		&room.FloorNo,
		&room.Name,
		&room.Capacity,
		&room.Enabled,
		&room.Sort,
		&room.Remark,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
