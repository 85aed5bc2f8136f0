package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/pgerr"
	"github.com/m04kA/SMC-FacilityService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"room_id",
	"applicant_user_id",
	"participant_user_ids",
	"purpose",
	"start_at",
	"end_at",
	"status",
	"reject_reason",
	"reviewed_by",
	"reviewed_at",
	"created_at",
	"updated_at",
}

// Transition описание перехода статуса
type Transition struct {
	ID           int64
	From         []domain.ReservationStatus
	To           domain.ReservationStatus
	ReviewedBy   *int64
	ReviewedAt   *time.Time
	RejectReason *string
	At           time.Time
}

// Repository репозиторий для работы с бронированиями комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockRoom берёт транзакционную advisory-блокировку на комнату.
// Блокировка держится до конца транзакции и сериализует проверку пересечений
// с последующей записью для одной комнаты. Вне транзакции не имеет смысла
func (r *Repository) LockRoom(ctx context.Context, roomID int64) error {
	tx, ok := dbmetrics.TxFromContext(ctx)
	if !ok {
		return ErrTransactionRequired
	}

	_, err := tx.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock($1::integer, ($2::bigint % 2147483647)::integer)",
		LockNamespaceRoom, roomID,
	)
	if err != nil {
		return fmt.Errorf("%w: LockRoom - room_id=%d: %w", ErrExecQuery, roomID, err)
	}
	return nil
}

// Create создает новое бронирование.
// Нарушение ограничения исключения (пересечение интервалов) возвращается как ErrTimeConflict
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"room_id",
			"applicant_user_id",
			"participant_user_ids",
			"purpose",
			"start_at",
			"end_at",
			"status",
		).
		Values(
			reservation.RoomID,
			reservation.ApplicantUserID,
			pq.Array(reservation.ParticipantUserIDs),
			reservation.Purpose,
			reservation.StartAt,
			reservation.EndAt,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		if pgerr.IsExclusionViolation(err) {
			return nil, ErrTimeConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return reservation, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы переход статуса
// не пересёкся с параллельным изменением
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// List получает бронирования с фильтрацией
//
// Примеры:
//
//  1. Активные бронирования комнаты, пересекающие интервал (проверка конфликтов):
//     filter := domain.ReservationsFilter{RoomIDs: []int64{7}, Statuses: domain.ActiveStatuses, Window: &interval}
//
//  2. Бронирования пользователя:
//     filter := domain.ReservationsFilter{ApplicantUserID: &userID}
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func buildListQuery(filter domain.ReservationsFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if len(filter.RoomIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": filter.RoomIDs})
	}
	if filter.ApplicantUserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"applicant_user_id": *filter.ApplicantUserID})
	}
	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}
	// Пересечение полуинтервалов: start < window.end AND end > window.start
	if filter.Window != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_at": filter.Window.End}).
			Where(squirrel.Gt{"end_at": filter.Window.Start})
	}
	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC", "id ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	return selectBuilder.ToSql()
}

// FindOverlapping возвращает активные бронирования комнаты, пересекающие интервал
func (r *Repository) FindOverlapping(ctx context.Context, roomID int64, interval domain.Interval, excludeID *int64) ([]*domain.Reservation, error) {
	return r.List(ctx, domain.ReservationsFilter{
		RoomIDs:   []int64{roomID},
		Statuses:  domain.ActiveStatuses,
		Window:    &interval,
		ExcludeID: excludeID,
	})
}

// CountActiveByRoom считает активные бронирования комнаты
func (r *Repository) CountActiveByRoom(ctx context.Context, roomID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByRoom - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByRoom - scan count: %w", ErrScanRow, err)
	}
	return count, nil
}

// UpdateDetails обновляет время, цель и участников бронирования в статусе pending
func (r *Repository) UpdateDetails(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("purpose", reservation.Purpose).
		Set("participant_user_ids", pq.Array(reservation.ParticipantUserIDs)).
		Set("start_at", reservation.StartAt).
		Set("end_at", reservation.EndAt).
		Set("updated_at", reservation.UpdatedAt).
		Where(squirrel.Eq{"id": reservation.ID}).
		Where(squirrel.Eq{"status": string(domain.StatusPending)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsExclusionViolation(err) {
			return ErrTimeConflict
		}
		return fmt.Errorf("%w: UpdateDetails - execute update: %w", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateDetails")
}

// UpdateStatus переводит бронирование из одного из статусов From в статус To
func (r *Repository) UpdateStatus(ctx context.Context, t Transition) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("status", t.To).
		Set("updated_at", t.At).
		Where(squirrel.Eq{"id": t.ID})

	if len(t.From) > 0 {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"status": statusStrings(t.From)})
	}
	if t.ReviewedBy != nil {
		updateBuilder = updateBuilder.
			Set("reviewed_by", *t.ReviewedBy).
			Set("reviewed_at", t.ReviewedAt)
	}
	if t.RejectReason != nil {
		updateBuilder = updateBuilder.Set("reject_reason", *t.RejectReason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsExclusionViolation(err) {
			return ErrTimeConflict
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation  domain.Reservation
		participants pq.Int64Array
		status       string
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.RoomID,
		&reservation.ApplicantUserID,
		&participants,
		&reservation.Purpose,
		&reservation.StartAt,
		&reservation.EndAt,
		&status,
		&reservation.RejectReason,
		&reservation.ReviewedBy,
		&reservation.ReviewedAt,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.Status = domain.ReservationStatus(status)
	reservation.ParticipantUserIDs = []int64(participants)
	if reservation.ParticipantUserIDs == nil {
		reservation.ParticipantUserIDs = []int64{}
	}

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
