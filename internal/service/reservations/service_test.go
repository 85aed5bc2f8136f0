package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FacilityService/internal/testfixtures"
	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
	"github.com/m04kA/SMC-FacilityService/pkg/clock"
	"github.com/m04kA/SMC-FacilityService/pkg/logger"
	"github.com/m04kA/SMC-FacilityService/pkg/metrics"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

const (
	roomID      = int64(10)
	applicantID = int64(1)
	reviewerID  = int64(500)
	outsiderID  = int64(900)
)

type env struct {
	store   *testfixtures.Store
	auditor *testfixtures.Auditor
	clock   *clock.Manual
	svc     *Service
}

func newEnv() *env {
	e := &env{
		store:   testfixtures.NewStore(),
		auditor: &testfixtures.Auditor{},
		clock:   clock.NewManual(testfixtures.ReferenceTime()),
	}
	perms := testfixtures.NewPermissions().Grant(reviewerID, domain.PermissionReservationReview)
	e.svc = NewService(e.store, perms, e.auditor, (*metrics.Metrics)(nil), e.store, e.clock, logger.Nop())
	return e
}

func seed(e *env, opts ...testfixtures.ReservationOption) *domain.Reservation {
	r := testfixtures.NewReservation(roomID, applicantID, opts...)
	e.store.Seed(r)
	return r
}

func TestGetDetail_Visibility(t *testing.T) {
	e := newEnv()
	reviewedAt := testfixtures.ReferenceTime()
	r := seed(e, func(r *domain.Reservation) {
		r.ReviewedBy = ptr.Ptr(reviewerID)
		r.ReviewedAt = &reviewedAt
	})
	ctx := context.Background()

	own, err := e.svc.GetDetail(ctx, applicantID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), own.Status)
	assert.Nil(t, own.ReviewedBy, "applicant does not see the reviewer")

	asReviewer, err := e.svc.GetDetail(ctx, reviewerID, r.ID)
	require.NoError(t, err)
	require.NotNil(t, asReviewer.ReviewedBy)
	assert.Equal(t, reviewerID, *asReviewer.ReviewedBy)

	_, err = e.svc.GetDetail(ctx, outsiderID, r.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = e.svc.GetDetail(ctx, applicantID, 123456)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestListMine_FiltersByApplicantAndStatus(t *testing.T) {
	e := newEnv()
	seed(e, testfixtures.WithInterval(testfixtures.Hour(3), testfixtures.Hour(4)))
	seed(e, testfixtures.WithInterval(testfixtures.Hour(1), testfixtures.Hour(2)), testfixtures.WithStatus(domain.StatusPending))
	e.store.Seed(testfixtures.NewReservation(roomID, outsiderID, testfixtures.WithInterval(testfixtures.Hour(5), testfixtures.Hour(6))))
	ctx := context.Background()

	all, err := e.svc.ListMine(ctx, &models.ListMineRequest{UserID: applicantID})
	require.NoError(t, err)
	require.Len(t, all.Reservations, 2)
	assert.Equal(t, testfixtures.Hour(1), all.Reservations[0].StartAt)

	status := domain.StatusPending
	onlyPending, err := e.svc.ListMine(ctx, &models.ListMineRequest{UserID: applicantID, Status: &status})
	require.NoError(t, err)
	assert.Len(t, onlyPending.Reservations, 1)

	bogus := domain.ReservationStatus("archived")
	_, err = e.svc.ListMine(ctx, &models.ListMineRequest{UserID: applicantID, Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListForReview(t *testing.T) {
	e := newEnv()
	seed(e, testfixtures.WithStatus(domain.StatusPending), testfixtures.WithInterval(testfixtures.Hour(1), testfixtures.Hour(2)))
	seed(e, testfixtures.WithStatus(domain.StatusPending), testfixtures.WithInterval(testfixtures.Hour(30), testfixtures.Hour(31)))
	seed(e, testfixtures.WithInterval(testfixtures.Hour(3), testfixtures.Hour(4)))
	ctx := context.Background()

	queue, err := e.svc.ListForReview(ctx, &models.ListForReviewRequest{ReviewerID: reviewerID})
	require.NoError(t, err)
	assert.Len(t, queue.Reservations, 2)

	from, to := testfixtures.Hour(0), testfixtures.Hour(24)
	windowed, err := e.svc.ListForReview(ctx, &models.ListForReviewRequest{ReviewerID: reviewerID, From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, windowed.Reservations, 1)

	_, err = e.svc.ListForReview(ctx, &models.ListForReviewRequest{ReviewerID: reviewerID, From: &from})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = e.svc.ListForReview(ctx, &models.ListForReviewRequest{ReviewerID: applicantID})
	assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("applicant before start", func(t *testing.T) {
		e := newEnv()
		r := seed(e)

		resp, err := e.svc.Cancel(ctx, &models.CancelReservationRequest{ActorID: applicantID, ReservationID: r.ID, Reason: ptr.Ptr(" plans changed ")})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Equal(t, domain.StatusCancelled, e.store.Reservation(r.ID).Status)

		entries := e.auditor.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, audit.ActionReservationCancel, entries[0].Action)
		assert.Equal(t, "plans changed", *entries[0].Reason)
	})

	t.Run("reviewer cancels pending", func(t *testing.T) {
		e := newEnv()
		r := seed(e, testfixtures.WithStatus(domain.StatusPending))

		_, err := e.svc.Cancel(ctx, &models.CancelReservationRequest{ActorID: reviewerID, ReservationID: r.ID})
		assert.NoError(t, err)
	})

	t.Run("outsider", func(t *testing.T) {
		e := newEnv()
		r := seed(e)

		_, err := e.svc.Cancel(ctx, &models.CancelReservationRequest{ActorID: outsiderID, ReservationID: r.ID})
		assert.ErrorIs(t, err, ErrReservationNotFound)
		assert.Equal(t, domain.StatusApproved, e.store.Reservation(r.ID).Status)
	})

	t.Run("already started", func(t *testing.T) {
		e := newEnv()
		r := seed(e)
		e.clock.Set(r.StartAt)

		_, err := e.svc.Cancel(ctx, &models.CancelReservationRequest{ActorID: applicantID, ReservationID: r.ID})
		assert.ErrorIs(t, err, ErrNotCancellable)

		e.clock.Set(r.StartAt.Add(-time.Second))
		_, err = e.svc.Cancel(ctx, &models.CancelReservationRequest{ActorID: applicantID, ReservationID: r.ID})
		assert.NoError(t, err)
	})

	t.Run("terminal status", func(t *testing.T) {
		e := newEnv()
		r := seed(e, testfixtures.WithStatus(domain.StatusRejected))

		_, err := e.svc.Cancel(ctx, &models.CancelReservationRequest{ActorID: applicantID, ReservationID: r.ID})
		assert.ErrorIs(t, err, ErrNotCancellable)
		assert.Equal(t, apperror.Conflict, apperror.KindOf(err))
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("pending with reason", func(t *testing.T) {
		e := newEnv()
		r := seed(e, testfixtures.WithStatus(domain.StatusPending))

		resp, err := e.svc.Reject(ctx, &models.RejectReservationRequest{ReviewerID: reviewerID, ReservationID: r.ID, Reason: "room is under repair"})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusRejected), resp.Status)

		stored := e.store.Reservation(r.ID)
		assert.Equal(t, domain.StatusRejected, stored.Status)
		assert.Equal(t, "room is under repair", *stored.RejectReason)
		assert.Equal(t, reviewerID, *stored.ReviewedBy)

		own, err := e.svc.GetDetail(ctx, applicantID, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "room is under repair", *own.RejectReason)
		assert.Nil(t, own.ReviewedBy)
	})

	t.Run("empty reason", func(t *testing.T) {
		e := newEnv()
		r := seed(e, testfixtures.WithStatus(domain.StatusPending))

		_, err := e.svc.Reject(ctx, &models.RejectReservationRequest{ReviewerID: reviewerID, ReservationID: r.ID, Reason: "  "})
		assert.ErrorIs(t, err, ErrInvalidRejectReason)
	})

	t.Run("not pending", func(t *testing.T) {
		e := newEnv()
		r := seed(e)

		_, err := e.svc.Reject(ctx, &models.RejectReservationRequest{ReviewerID: reviewerID, ReservationID: r.ID, Reason: "late"})
		assert.ErrorIs(t, err, ErrNotPending)
		assert.Empty(t, e.auditor.Entries())
	})

	t.Run("no permission", func(t *testing.T) {
		e := newEnv()
		r := seed(e, testfixtures.WithStatus(domain.StatusPending))

		_, err := e.svc.Reject(ctx, &models.RejectReservationRequest{ReviewerID: applicantID, ReservationID: r.ID, Reason: "x"})
		assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))
	})
}
