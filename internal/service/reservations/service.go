package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
)

// Service сервис чтения бронирований и переходов, не требующих проверки допуска:
// отмена и отклонение
type Service struct {
	reservationRepo ReservationRepository
	guard           PermissionGuard
	auditor         AuditRecorder
	metrics         MetricsObserver
	txManager       TransactionManager
	clock           Clock
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	guard PermissionGuard,
	auditor AuditRecorder,
	metrics MetricsObserver,
	txManager TransactionManager,
	clock Clock,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		guard:           guard,
		auditor:         auditor,
		metrics:         metrics,
		txManager:       txManager,
		clock:           clock,
		logger:          logger,
	}
}

// GetDetail возвращает бронирование заявителю или ревьюеру.
// Остальным бронирование не видно. Заявитель не видит, кто рассматривал заявку
func (s *Service) GetDetail(ctx context.Context, viewerID, reservationID int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, s.mapError("GetDetail", err)
	}

	if reservation.ApplicantUserID == viewerID {
		return models.FromDomainReservation(reservation, false), nil
	}

	isReviewer, err := s.guard.Has(ctx, viewerID, domain.PermissionReservationReview)
	if err != nil {
		return nil, err
	}
	if !isReviewer {
		s.logger.Warn("GetDetail: user=%d cannot see reservation id=%d", viewerID, reservationID)
		return nil, ErrReservationNotFound
	}
	return models.FromDomainReservation(reservation, true), nil
}

// ListMine возвращает бронирования пользователя по времени начала
func (s *Service) ListMine(ctx context.Context, req *models.ListMineRequest) (*models.ReservationListResponse, error) {
	if err := validateStatus(req.Status); err != nil {
		return nil, err
	}

	limit, offset := normalizePage(req.Limit, req.Offset)
	filter := domain.ReservationsFilter{
		ApplicantUserID: &req.UserID,
		Limit:           limit,
		Offset:          offset,
	}
	if req.Status != nil {
		filter.Statuses = []domain.ReservationStatus{*req.Status}
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		return nil, s.mapError("ListMine", err)
	}
	return models.FromDomainReservationList(reservations, false), nil
}

// ListForReview очередь ревьюера; по умолчанию только заявки в pending
func (s *Service) ListForReview(ctx context.Context, req *models.ListForReviewRequest) (*models.ReservationListResponse, error) {
	if err := s.guard.Require(ctx, req.ReviewerID, domain.PermissionReservationReview); err != nil {
		return nil, err
	}
	if err := validateStatus(req.Status); err != nil {
		return nil, err
	}
	window, err := reviewWindow(req)
	if err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	limit, offset := normalizePage(req.Limit, req.Offset)
	filter := domain.ReservationsFilter{
		Statuses: []domain.ReservationStatus{status},
		Window:   window,
		Limit:    limit,
		Offset:   offset,
	}
	if req.RoomID != nil {
		filter.RoomIDs = []int64{*req.RoomID}
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		return nil, s.mapError("ListForReview", err)
	}
	return models.FromDomainReservationList(reservations, true), nil
}

// Cancel отменяет активное бронирование до его начала.
// Отменить может заявитель или ревьюер
func (s *Service) Cancel(ctx context.Context, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", req.ReservationID, req.ActorID)

	reason, err := validateCancelReason(req.Reason)
	if err != nil {
		return nil, err
	}

	var before, after domain.Reservation
	var isReviewer bool
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
		if err != nil {
			return err
		}

		if reservation.ApplicantUserID != req.ActorID {
			isReviewer, err = s.guard.Has(ctx, req.ActorID, domain.PermissionReservationReview)
			if err != nil {
				return err
			}
			if !isReviewer {
				s.logger.Warn("Cancel: user=%d cannot see reservation id=%d", req.ActorID, req.ReservationID)
				return ErrReservationNotFound
			}
		}

		now := s.clock.Now()
		if !reservation.CanBeCancelled(now) {
			s.logger.Warn("Cancel: reservation id=%d status=%s starts at %s", reservation.ID, reservation.Status, reservation.StartAt)
			return ErrNotCancellable
		}

		err = s.reservationRepo.UpdateStatus(ctx, reservationRepo.Transition{
			ID:   reservation.ID,
			From: domain.ActiveStatuses,
			To:   domain.StatusCancelled,
			At:   now,
		})
		if err != nil {
			return err
		}

		before = *reservation
		after = *reservation
		after.Status = domain.StatusCancelled
		after.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, s.mapError("Cancel", err)
	}

	s.metrics.ObserveTransition(audit.ActionReservationCancel)
	s.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ActorID,
		Action:     audit.ActionReservationCancel,
		TargetType: audit.TargetReservation,
		TargetID:   after.ID,
		Success:    true,
		Reason:     reason,
		Diff:       audit.Diff{}.Change("status", string(before.Status), string(after.Status)),
	})

	s.logger.Info("Cancel: cancelled reservation id=%d", after.ID)
	return models.FromDomainReservation(&after, isReviewer), nil
}

// Reject отклоняет заявку в статусе pending с обязательной причиной
func (s *Service) Reject(ctx context.Context, req *models.RejectReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Reject: rejecting reservation id=%d by reviewer=%d", req.ReservationID, req.ReviewerID)

	if err := s.guard.Require(ctx, req.ReviewerID, domain.PermissionReservationReview); err != nil {
		return nil, err
	}
	reason, err := validateRejectReason(req.Reason)
	if err != nil {
		return nil, err
	}

	var rejected domain.Reservation
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
		if err != nil {
			return err
		}
		if !reservation.CanBeReviewed() {
			s.logger.Warn("Reject: reservation id=%d has status=%s", reservation.ID, reservation.Status)
			return ErrNotPending
		}

		now := s.clock.Now()
		err = s.reservationRepo.UpdateStatus(ctx, reservationRepo.Transition{
			ID:           reservation.ID,
			From:         []domain.ReservationStatus{domain.StatusPending},
			To:           domain.StatusRejected,
			ReviewedBy:   &req.ReviewerID,
			ReviewedAt:   &now,
			RejectReason: &reason,
			At:           now,
		})
		if err != nil {
			return err
		}

		rejected = *reservation
		rejected.Status = domain.StatusRejected
		rejected.RejectReason = &reason
		rejected.ReviewedBy = &req.ReviewerID
		rejected.ReviewedAt = &now
		rejected.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, s.mapError("Reject", err)
	}

	s.metrics.ObserveTransition(audit.ActionReservationReject)
	s.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ReviewerID,
		Action:     audit.ActionReservationReject,
		TargetType: audit.TargetReservation,
		TargetID:   rejected.ID,
		Success:    true,
		Reason:     &reason,
		Diff:       audit.Diff{}.Change("status", string(domain.StatusPending), string(domain.StatusRejected)),
	})

	s.logger.Info("Reject: rejected reservation id=%d", rejected.ID)
	return models.FromDomainReservation(&rejected, true), nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		return ErrReservationNotFound
	case errors.Is(err, reservationRepo.ErrStatusChanged):
		if op == "Cancel" {
			return ErrNotCancellable
		}
		return ErrNotPending
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
