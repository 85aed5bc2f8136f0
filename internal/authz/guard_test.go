package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) HasPermission(ctx context.Context, userID int64, code string) (bool, error) {
	args := m.Called(ctx, userID, code)
	return args.Bool(0), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGuard_Require(t *testing.T) {
	ctx := context.Background()
	source := new(mockSource)
	guard := NewGuard(source, nopLogger{})

	source.On("HasPermission", ctx, int64(1), "facility.ban.manage").Return(true, nil)
	source.On("HasPermission", ctx, int64(2), "facility.ban.manage").Return(false, nil)
	source.On("HasPermission", ctx, int64(3), "facility.ban.manage").Return(false, errors.New("timeout"))

	assert.NoError(t, guard.Require(ctx, 1, "facility.ban.manage"))

	err := guard.Require(ctx, 2, "facility.ban.manage")
	assert.True(t, IsForbidden(err))
	assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))

	err = guard.Require(ctx, 3, "facility.ban.manage")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, apperror.Internal, apperror.KindOf(err))

	source.AssertExpectations(t)
}
