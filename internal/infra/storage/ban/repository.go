package ban

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/psqlbuilder"
)

const table = "bans"

var columns = []string{
	"id",
	"user_id",
	"reason",
	"created_by",
	"created_at",
	"expires_at",
	"revoked_by",
	"revoked_at",
	"revoke_reason",
}

// Revocation данные отзыва бана
type Revocation struct {
	BanID     int64
	RevokedBy int64
	RevokedAt time.Time
	Reason    string
}

// Repository репозиторий банов. Строки только добавляются,
// отзыв записывается в ту же строку и никогда не удаляет её
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория банов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockUser берёт транзакционную advisory-блокировку на пользователя,
// чтобы два параллельных бана одного пользователя не прошли проверку одновременно
func (r *Repository) LockUser(ctx context.Context, userID int64) error {
	tx, ok := dbmetrics.TxFromContext(ctx)
	if !ok {
		return ErrTransactionRequired
	}

	_, err := tx.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock($1::integer, ($2::bigint % 2147483647)::integer)",
		LockNamespaceUser, userID,
	)
	if err != nil {
		return fmt.Errorf("%w: LockUser - user_id=%d: %w", ErrExecQuery, userID, err)
	}
	return nil
}

// Create добавляет новую строку бана
func (r *Repository) Create(ctx context.Context, ban *domain.Ban) (*domain.Ban, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("user_id", "reason", "created_by", "created_at", "expires_at").
		Values(ban.UserID, ban.Reason, ban.CreatedBy, ban.CreatedAt, ban.ExpiresAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&ban.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return ban, nil
}

// GetByID получает бан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Ban, error) {
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

	ban, err := scanBan(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan ban: %w", ErrScanRow, err)
	}

	return ban, nil
}

// GetActiveByUser возвращает активный на момент now бан пользователя или nil
func (r *Repository) GetActiveByUser(ctx context.Context, userID int64, now time.Time) (*domain.Ban, error) {
	bans, err := r.query(ctx, activeQuery(now).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1), "GetActiveByUser")
	if err != nil {
		return nil, err
	}
	if len(bans) == 0 {
		return nil, nil
	}
	return bans[0], nil
}

// ListActive возвращает все активные на момент now баны
func (r *Repository) ListActive(ctx context.Context, now time.Time) ([]*domain.Ban, error) {
	return r.query(ctx, activeQuery(now).OrderBy("created_at DESC", "id DESC"), "ListActive")
}

// ListByUser возвращает всю историю банов пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Ban, error) {
	return r.query(ctx, psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC"), "ListByUser")
}

// Revoke записывает отзыв бана. Уже отозванный бан возвращает ErrAlreadyRevoked
func (r *Repository) Revoke(ctx context.Context, rev Revocation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("revoked_by", rev.RevokedBy).
		Set("revoked_at", rev.RevokedAt).
		Set("revoke_reason", rev.Reason).
		Where(squirrel.Eq{"id": rev.BanID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Revoke - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Revoke - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Revoke - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAlreadyRevoked
	}
	return nil
}

// activeQuery строит выборку по предикату активности:
// revoked_at IS NULL AND (expires_at IS NULL OR expires_at > now)
func activeQuery(now time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"revoked_at": nil}).
		Where(squirrel.Or{
			squirrel.Eq{"expires_at": nil},
			squirrel.Gt{"expires_at": now},
		})
}

func (r *Repository) query(ctx context.Context, selectBuilder squirrel.SelectBuilder, op string) ([]*domain.Ban, error) {
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

	bans := make([]*domain.Ban, 0)
	for rows.Next() {
		ban, err := scanBan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		bans = append(bans, ban)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return bans, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBan(row rowScanner) (*domain.Ban, error) {
	var ban domain.Ban
	err := row.Scan(
		&ban.ID,
		&ban.UserID,
		&ban.Reason,
		&ban.CreatedBy,
		&ban.CreatedAt,
		&ban.ExpiresAt,
		&ban.RevokedBy,
		&ban.RevokedAt,
		&ban.RevokeReason,
	)
	if err != nil {
		return nil, err
	}
	return &ban, nil
}
