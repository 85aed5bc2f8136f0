package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityService/pkg/pgerr"
)

type fakeTx struct {
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	txs       []*fakeTx
	opts      []*sql.TxOptions
	commitErr error
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &fakeTx{commitErr: b.commitErr}
	b.txs = append(b.txs, tx)
	b.opts = append(b.opts, opts)
	return tx, nil
}

func TestDo_CommitsInReadCommitted(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, beginner.txs, 1)
	assert.Equal(t, 1, beginner.txs[0].commits)
	assert.Equal(t, sql.LevelReadCommitted, beginner.opts[0].Isolation)
}

func TestDo_BusinessErrorRollsBack(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)
	businessErr := errors.New("time conflict")

	calls := 0
	err := manager.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return businessErr
	})

	assert.Equal(t, 1, calls)
	assert.Same(t, businessErr, err)
	assert.Equal(t, 1, beginner.txs[0].rollbacks)
	assert.Equal(t, 0, beginner.txs[0].commits)
}

func TestDo_DeadlockOnCommitKeepsDriverError(t *testing.T) {
	manager := NewTransactionManager(&fakeBeginner{commitErr: &pq.Error{Code: "40P01"}})

	err := manager.Do(context.Background(), func(ctx context.Context) error { return nil })

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCommitTx))
	assert.Equal(t, "40P01", pgerr.Code(err))
}

func TestDo_CommitErrorIsWrapped(t *testing.T) {
	manager := NewTransactionManager(&fakeBeginner{commitErr: errors.New("connection reset")})

	err := manager.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.True(t, errors.Is(err, ErrCommitTx))
}

func TestDo_NestedCallReusesTransaction(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return manager.Do(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.Len(t, beginner.txs, 1)
}

func TestDoReadOnly_SetsReadOnly(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	require.NoError(t, manager.DoReadOnly(context.Background(), func(ctx context.Context) error { return nil }))
	assert.True(t, beginner.opts[0].ReadOnly)
}
