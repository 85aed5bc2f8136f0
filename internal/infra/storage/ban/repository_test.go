package ban

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveQuery(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	query, args, err := activeQuery(now).Where("user_id = ?", int64(7)).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM bans")
	assert.Contains(t, query, "revoked_at IS NULL")
	assert.Contains(t, query, "(expires_at IS NULL OR expires_at > $1)")
	assert.Contains(t, query, "user_id = $2")
	assert.Equal(t, []interface{}{now, int64(7)}, args)
}

func TestLockUser_RequiresTransaction(t *testing.T) {
	repo := NewRepository(nil)
	err := repo.LockUser(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTransactionRequired)
}
