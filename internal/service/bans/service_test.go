package bans

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/authz"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	banRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/ban"
	"github.com/m04kA/SMC-FacilityService/internal/service/bans/models"
	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
	"github.com/m04kA/SMC-FacilityService/pkg/clock"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

type mockBanRepo struct {
	mock.Mock
}

func (m *mockBanRepo) LockUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockBanRepo) Create(ctx context.Context, ban *domain.Ban) (*domain.Ban, error) {
	args := m.Called(ctx, ban)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ban), args.Error(1)
}

func (m *mockBanRepo) GetByID(ctx context.Context, id int64) (*domain.Ban, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ban), args.Error(1)
}

func (m *mockBanRepo) GetActiveByUser(ctx context.Context, userID int64, now time.Time) (*domain.Ban, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ban), args.Error(1)
}

func (m *mockBanRepo) ListActive(ctx context.Context, now time.Time) ([]*domain.Ban, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]*domain.Ban), args.Error(1)
}

func (m *mockBanRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Ban, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*domain.Ban), args.Error(1)
}

func (m *mockBanRepo) Revoke(ctx context.Context, rev banRepo.Revocation) error {
	return m.Called(ctx, rev).Error(0)
}

type mockGuard struct {
	mock.Mock
}

func (m *mockGuard) Require(ctx context.Context, userID int64, code string) error {
	return m.Called(ctx, userID, code).Error(0)
}

type recordingAuditor struct {
	entries []audit.Entry
}

func (r *recordingAuditor) Record(_ context.Context, entry audit.Entry) {
	r.entries = append(r.entries, entry)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	moderatorID = int64(1)
	userID      = int64(42)
)

var now = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	repo    *mockBanRepo
	guard   *mockGuard
	auditor *recordingAuditor
	clock   *clock.Manual
	svc     *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:    new(mockBanRepo),
		guard:   new(mockGuard),
		auditor: &recordingAuditor{},
		clock:   clock.NewManual(now),
	}
	f.guard.On("Require", mock.Anything, moderatorID, domain.PermissionBanManage).Return(nil)
	f.guard.On("Require", mock.Anything, userID, domain.PermissionBanManage).Return(authz.ErrForbidden)
	f.svc = NewService(f.repo, f.guard, f.auditor, passthroughTx{}, f.clock, nopLogger{})
	return f
}

func TestService_Ban(t *testing.T) {
	ctx := context.Background()

	t.Run("duration resolves to expiry", func(t *testing.T) {
		f := newFixture()
		expected := now.Add(36 * time.Hour)
		f.repo.On("LockUser", mock.Anything, userID).Return(nil)
		f.repo.On("GetActiveByUser", mock.Anything, userID, now).Return(nil, nil)
		f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Ban) bool {
			return b.UserID == userID && b.ExpiresAt != nil && b.ExpiresAt.Equal(expected) && b.CreatedBy == moderatorID
		})).Return(&domain.Ban{ID: 5, UserID: userID, Reason: "spam", CreatedBy: moderatorID, CreatedAt: now, ExpiresAt: &expected}, nil)

		resp, err := f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: moderatorID, UserID: userID, Reason: "spam", DurationHours: ptr.Ptr(36.0)})
		require.NoError(t, err)
		assert.True(t, resp.Active)
		assert.Equal(t, int64(5), resp.ID)
		require.Len(t, f.auditor.entries, 1)
		assert.Equal(t, audit.ActionBanCreate, f.auditor.entries[0].Action)
	})

	t.Run("already banned", func(t *testing.T) {
		f := newFixture()
		f.repo.On("LockUser", mock.Anything, userID).Return(nil)
		f.repo.On("GetActiveByUser", mock.Anything, userID, now).Return(&domain.Ban{ID: 3, UserID: userID}, nil)

		_, err := f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: moderatorID, UserID: userID, Reason: "spam"})
		assert.ErrorIs(t, err, ErrAlreadyBanned)
		assert.Equal(t, apperror.Conflict, apperror.KindOf(err))
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture()
		past := now.Add(-time.Hour)

		_, err := f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: moderatorID, UserID: userID, Reason: " "})
		assert.ErrorIs(t, err, ErrInvalidReason)

		_, err = f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: moderatorID, UserID: userID, Reason: "x", ExpiresAt: &past})
		assert.ErrorIs(t, err, ErrInvalidExpiry)

		future := now.Add(time.Hour)
		_, err = f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: moderatorID, UserID: userID, Reason: "x", ExpiresAt: &future, DurationHours: ptr.Ptr(1.0)})
		assert.ErrorIs(t, err, ErrAmbiguousExpiry)

		_, err = f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: moderatorID, UserID: 0, Reason: "x"})
		assert.ErrorIs(t, err, ErrInvalidUserID)
	})

	t.Run("duration out of range", func(t *testing.T) {
		f := newFixture()

		for _, hours := range []float64{0, -1, domain.MaxBanDurationHours + 1, 3_000_000} {
			_, err := f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: moderatorID, UserID: userID, Reason: "x", DurationHours: ptr.Ptr(hours)})
			assert.ErrorIs(t, err, ErrInvalidDuration, "hours=%v", hours)
			assert.Equal(t, apperror.BadRequest, apperror.KindOf(err))
		}
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duration at cap", func(t *testing.T) {
		f := newFixture()
		expected := now.Add(domain.MaxBanDurationHours * time.Hour)
		f.repo.On("LockUser", mock.Anything, userID).Return(nil)
		f.repo.On("GetActiveByUser", mock.Anything, userID, now).Return(nil, nil)
		f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Ban) bool {
			return b.ExpiresAt != nil && b.ExpiresAt.Equal(expected)
		})).Return(&domain.Ban{ID: 6, UserID: userID, Reason: "x", CreatedBy: moderatorID, CreatedAt: now, ExpiresAt: &expected}, nil)

		resp, err := f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: moderatorID, UserID: userID, Reason: "x", DurationHours: ptr.Ptr(float64(domain.MaxBanDurationHours))})
		require.NoError(t, err)
		assert.True(t, resp.ExpiresAt.After(now))
	})

	t.Run("forbidden", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Ban(ctx, &models.CreateBanRequest{ActorID: userID, UserID: 7, Reason: "x"})
		assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))
	})
}

func TestService_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Ban{ID: 5, UserID: userID}, nil)
		f.repo.On("Revoke", mock.Anything, banRepo.Revocation{BanID: 5, RevokedBy: moderatorID, RevokedAt: now, Reason: "appeal"}).Return(nil)

		resp, err := f.svc.Revoke(ctx, &models.RevokeBanRequest{ActorID: moderatorID, BanID: 5, Reason: "appeal"})
		require.NoError(t, err)
		assert.False(t, resp.Active)
		assert.Equal(t, "appeal", *resp.RevokeReason)
	})

	t.Run("expired ban is not found", func(t *testing.T) {
		f := newFixture()
		expired := now.Add(-time.Minute)
		f.repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Ban{ID: 5, ExpiresAt: &expired}, nil)

		_, err := f.svc.Revoke(ctx, &models.RevokeBanRequest{ActorID: moderatorID, BanID: 5, Reason: "appeal"})
		assert.ErrorIs(t, err, ErrBanNotFound)
		assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
	})

	t.Run("already revoked", func(t *testing.T) {
		f := newFixture()
		revokedAt := now.Add(-time.Hour)
		f.repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Ban{ID: 5, RevokedAt: &revokedAt}, nil)

		_, err := f.svc.Revoke(ctx, &models.RevokeBanRequest{ActorID: moderatorID, BanID: 5, Reason: "appeal"})
		assert.ErrorIs(t, err, ErrBanNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", mock.Anything, int64(99)).Return(nil, banRepo.ErrBanNotFound)

		_, err := f.svc.Revoke(ctx, &models.RevokeBanRequest{ActorID: moderatorID, BanID: 99, Reason: "appeal"})
		assert.ErrorIs(t, err, ErrBanNotFound)
	})
}

func TestService_Extend(t *testing.T) {
	f := newFixture()
	oldExpiry := now.Add(time.Hour)
	newExpiry := now.Add(72 * time.Hour)

	f.repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Ban{ID: 5, UserID: userID, ExpiresAt: &oldExpiry}, nil)
	f.repo.On("LockUser", mock.Anything, userID).Return(nil)
	f.repo.On("Revoke", mock.Anything, mock.MatchedBy(func(r banRepo.Revocation) bool { return r.BanID == 5 })).Return(nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Ban) bool {
		return b.UserID == userID && b.ExpiresAt.Equal(newExpiry)
	})).Return(&domain.Ban{ID: 6, UserID: userID, ExpiresAt: &newExpiry, CreatedAt: now}, nil)

	resp, err := f.svc.Extend(context.Background(), &models.ExtendBanRequest{ActorID: moderatorID, BanID: 5, Reason: "repeat", ExpiresAt: &newExpiry})
	require.NoError(t, err)
	assert.False(t, resp.Previous.Active)
	assert.True(t, resp.Current.Active)
	assert.Equal(t, int64(6), resp.Current.ID)
	require.Len(t, f.auditor.entries, 1)
	assert.Equal(t, audit.ActionBanExtend, f.auditor.entries[0].Action)
}

func TestService_ExtendRejectsOverflowingDuration(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Extend(context.Background(), &models.ExtendBanRequest{ActorID: moderatorID, BanID: 5, Reason: "repeat", DurationHours: ptr.Ptr(3_000_000.0)})
	assert.ErrorIs(t, err, ErrInvalidDuration)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ListHistory(t *testing.T) {
	f := newFixture()
	f.repo.On("ListByUser", mock.Anything, userID).Return([]*domain.Ban{{ID: 1, UserID: userID}}, nil)

	resp, err := f.svc.ListHistory(context.Background(), userID, userID)
	require.NoError(t, err)
	assert.Len(t, resp.Bans, 1)

	_, err = f.svc.ListHistory(context.Background(), userID, 7)
	assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))
}
