package create_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/testfixtures"
	"github.com/m04kA/SMC-FacilityService/internal/usecase/admission"
	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
	"github.com/m04kA/SMC-FacilityService/pkg/clock"
	"github.com/m04kA/SMC-FacilityService/pkg/logger"
	"github.com/m04kA/SMC-FacilityService/pkg/metrics"
)

const roomID = int64(10)

type env struct {
	store   *testfixtures.Store
	auditor *testfixtures.Auditor
	uc      *UseCase
}

func newEnv() *env {
	e := &env{
		store:   testfixtures.NewStore(),
		auditor: &testfixtures.Auditor{},
	}
	e.store.AddRoom(testfixtures.NewRoom(roomID, 1))

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	checker := admission.NewChecker(e.store, e.store, e.store, e.store, m,
		clock.NewManual(testfixtures.ReferenceTime()), 180, logger.Nop())
	e.uc = NewUseCase(e.store, checker, e.store, e.auditor, m, logger.Nop())
	return e
}

func request(userID int64, start, end time.Time) *Request {
	return &Request{
		ApplicantUserID:    userID,
		RoomID:             roomID,
		StartAt:            start,
		EndAt:              end,
		Purpose:            "planning",
		ParticipantUserIDs: []int64{5, 4, 5},
	}
}

func TestExecute_CreatesPendingWhenAuditRequired(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), request(1, testfixtures.Hour(1), testfixtures.Hour(2)))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, []int64{4, 5}, resp.ParticipantUserIDs)
	assert.Nil(t, resp.ReviewedBy)

	stored := e.store.Reservation(resp.ID)
	require.NotNil(t, stored)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, []string{audit.ActionReservationCreate}, e.auditor.Actions())
	assert.Equal(t, 1, e.store.RoomLocks())
}

func TestExecute_AuditToggleAffectsOnlyNewReservations(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	first, err := e.uc.Execute(ctx, request(1, testfixtures.Hour(1), testfixtures.Hour(2)))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), first.Status)

	e.store.SetConfig(domain.FacilityConfig{AuditRequired: false, MaxDurationHours: 4})

	second, err := e.uc.Execute(ctx, request(1, testfixtures.Hour(3), testfixtures.Hour(4)))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), second.Status)
	assert.Nil(t, e.store.Reservation(second.ID).ReviewedBy)

	assert.Equal(t, domain.StatusPending, e.store.Reservation(first.ID).Status)
}

func TestExecute_ConcurrentOverlappingRequests(t *testing.T) {
	e := newEnv()
	const workers = 16

	var wg sync.WaitGroup
	errs := make([]error, workers)
	start := testfixtures.Hour(1)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			offset := time.Duration(i) * time.Minute
			_, errs[i] = e.uc.Execute(context.Background(),
				request(int64(i+1), start.Add(offset), start.Add(offset+time.Hour)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, apperror.Conflict, apperror.KindOf(err))
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, e.store.Reservations(), 1)
}

func TestExecute_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("banned applicant", func(t *testing.T) {
		e := newEnv()
		e.store.AddBan(domain.Ban{ID: 1, UserID: 1})

		_, err := e.uc.Execute(ctx, request(1, testfixtures.Hour(1), testfixtures.Hour(2)))
		assert.ErrorIs(t, err, admission.ErrBanned)
		assert.Empty(t, e.store.Reservations())
		assert.Empty(t, e.auditor.Entries())
	})

	t.Run("empty purpose", func(t *testing.T) {
		e := newEnv()
		req := request(1, testfixtures.Hour(1), testfixtures.Hour(2))
		req.Purpose = "  "

		_, err := e.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, admission.ErrInvalidPurpose)
		assert.Equal(t, 0, e.store.RoomLocks())
	})

	t.Run("missing room", func(t *testing.T) {
		e := newEnv()
		req := request(1, testfixtures.Hour(1), testfixtures.Hour(2))
		req.RoomID = 0

		_, err := e.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidRoomID)
	})

	t.Run("duration over cap", func(t *testing.T) {
		e := newEnv()
		_, err := e.uc.Execute(ctx, request(1, testfixtures.Hour(1), testfixtures.Hour(1).Add(4*time.Hour+time.Second)))
		assert.ErrorIs(t, err, admission.ErrDurationExceedsCap)
	})
}
