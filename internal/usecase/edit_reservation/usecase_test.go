package edit_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/testfixtures"
	"github.com/m04kA/SMC-FacilityService/internal/usecase/admission"
	"github.com/m04kA/SMC-FacilityService/pkg/clock"
	"github.com/m04kA/SMC-FacilityService/pkg/logger"
	"github.com/m04kA/SMC-FacilityService/pkg/metrics"
)

const (
	roomID      = int64(10)
	applicantID = int64(1)
)

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

	var m *metrics.Metrics
	checker := admission.NewChecker(e.store, e.store, e.store, e.store, m,
		clock.NewManual(testfixtures.ReferenceTime()), 180, logger.Nop())
	e.uc = NewUseCase(e.store, checker, e.store, e.auditor, m, logger.Nop())
	return e
}

func pending(opts ...testfixtures.ReservationOption) *domain.Reservation {
	opts = append([]testfixtures.ReservationOption{testfixtures.WithStatus(domain.StatusPending)}, opts...)
	return testfixtures.NewReservation(roomID, applicantID, opts...)
}

func TestExecute_MovesPendingReservation(t *testing.T) {
	e := newEnv()
	r := pending()
	e.store.Seed(r)

	resp, err := e.uc.Execute(context.Background(), &Request{
		ApplicantUserID:    applicantID,
		ReservationID:      r.ID,
		StartAt:            testfixtures.Hour(1).Add(30 * time.Minute),
		EndAt:              testfixtures.Hour(3),
		Purpose:            "retro",
		ParticipantUserIDs: []int64{2},
	})
	require.NoError(t, err)
	assert.Equal(t, "retro", resp.Purpose)

	stored := e.store.Reservation(r.ID)
	assert.Equal(t, testfixtures.Hour(3), stored.EndAt)
	assert.Equal(t, []int64{2}, stored.ParticipantUserIDs)

	entries := e.auditor.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionReservationEdit, entries[0].Action)
	assert.Contains(t, entries[0].Diff, "endAt")
	assert.Contains(t, entries[0].Diff, "purpose")
}

func TestExecute_OverlapWithItselfIsAllowed(t *testing.T) {
	e := newEnv()
	r := pending(testfixtures.WithInterval(testfixtures.Hour(1), testfixtures.Hour(3)))
	e.store.Seed(r)

	_, err := e.uc.Execute(context.Background(), &Request{
		ApplicantUserID: applicantID,
		ReservationID:   r.ID,
		StartAt:         testfixtures.Hour(2),
		EndAt:           testfixtures.Hour(4),
		Purpose:         "shifted",
	})
	assert.NoError(t, err)
}

func TestExecute_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("other applicant", func(t *testing.T) {
		e := newEnv()
		r := pending()
		e.store.Seed(r)

		_, err := e.uc.Execute(ctx, &Request{ApplicantUserID: 2, ReservationID: r.ID,
			StartAt: testfixtures.Hour(1), EndAt: testfixtures.Hour(2), Purpose: "x"})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		e := newEnv()
		_, err := e.uc.Execute(ctx, &Request{ApplicantUserID: applicantID, ReservationID: 424242,
			StartAt: testfixtures.Hour(1), EndAt: testfixtures.Hour(2), Purpose: "x"})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	for _, status := range []domain.ReservationStatus{domain.StatusApproved, domain.StatusRejected, domain.StatusCancelled} {
		t.Run("status "+string(status), func(t *testing.T) {
			e := newEnv()
			r := pending(testfixtures.WithStatus(status))
			e.store.Seed(r)

			_, err := e.uc.Execute(ctx, &Request{ApplicantUserID: applicantID, ReservationID: r.ID,
				StartAt: testfixtures.Hour(1), EndAt: testfixtures.Hour(2), Purpose: "x"})
			assert.ErrorIs(t, err, ErrNotEditable)
		})
	}

	t.Run("duration over cap", func(t *testing.T) {
		e := newEnv()
		r := pending()
		e.store.Seed(r)

		_, err := e.uc.Execute(ctx, &Request{ApplicantUserID: applicantID, ReservationID: r.ID,
			StartAt: testfixtures.Hour(1), EndAt: testfixtures.Hour(5).Add(time.Second), Purpose: "x"})
		assert.ErrorIs(t, err, admission.ErrDurationExceedsCap)
	})

	t.Run("conflicts with another reservation", func(t *testing.T) {
		e := newEnv()
		r := pending()
		other := testfixtures.NewReservation(roomID, 5, testfixtures.WithInterval(testfixtures.Hour(4), testfixtures.Hour(5)))
		e.store.Seed(r, other)

		_, err := e.uc.Execute(ctx, &Request{ApplicantUserID: applicantID, ReservationID: r.ID,
			StartAt: testfixtures.Hour(4), EndAt: testfixtures.Hour(5), Purpose: "x"})
		assert.ErrorIs(t, err, admission.ErrTimeConflict)
		assert.Equal(t, testfixtures.Hour(1), e.store.Reservation(r.ID).StartAt)
	})
}

func TestExecute_DurationAtCapIsAllowed(t *testing.T) {
	e := newEnv()
	r := pending()
	e.store.Seed(r)

	resp, err := e.uc.Execute(context.Background(), &Request{
		ApplicantUserID: applicantID,
		ReservationID:   r.ID,
		StartAt:         testfixtures.Hour(1),
		EndAt:           testfixtures.Hour(5),
		Purpose:         "workshop",
	})
	require.NoError(t, err)
	assert.True(t, testfixtures.Hour(5).Equal(resp.EndAt))
}
