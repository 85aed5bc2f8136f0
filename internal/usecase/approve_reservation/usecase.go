package approve_reservation

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

// UseCase use case для утверждения заявки ревьюером
type UseCase struct {
	reservationRepo ReservationRepository
	checker         AdmissionChecker
	guard           PermissionGuard
	auditor         AuditRecorder
	metrics         MetricsObserver
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	checker AdmissionChecker,
	guard PermissionGuard,
	auditor AuditRecorder,
	metrics MetricsObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		guard:           guard,
		auditor:         auditor,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case утверждения.
// Перед коммитом пересечения проверяются заново; найденный конфликт
// завершает запрос с CONFLICT, заявка остаётся в pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("ApproveReservation: reviewer=%d, reservation=%d", req.ReviewerID, req.ReservationID)

	// 1. Проверка прав
	if err := uc.guard.Require(ctx, req.ReviewerID, domain.PermissionReservationReview); err != nil {
		return nil, err
	}

	// 2. Комната нужна до транзакции, чтобы взять её блокировку
	current, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		return nil, uc.mapError(err)
	}

	// 3. Повторное чтение, проверка пересечений и переход под блокировкой комнаты
	var approved domain.Reservation
	err = uc.checker.WithRoomLock(ctx, current.RoomID, func(txCtx context.Context) error {
		locked, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			return err
		}
		if !locked.CanBeReviewed() {
			uc.logger.Warn("ApproveReservation: reservation id=%d has status=%s", locked.ID, locked.Status)
			return ErrNotPending
		}

		if err := uc.checker.CheckApproval(txCtx, locked); err != nil {
			return err
		}

		now := uc.checker.Now()
		err = uc.reservationRepo.UpdateStatus(txCtx, reservationRepo.Transition{
			ID:         locked.ID,
			From:       []domain.ReservationStatus{domain.StatusPending},
			To:         domain.StatusApproved,
			ReviewedBy: &req.ReviewerID,
			ReviewedAt: &now,
			At:         now,
		})
		if err != nil {
			return err
		}

		approved = *locked
		approved.Status = domain.StatusApproved
		approved.ReviewedBy = &req.ReviewerID
		approved.ReviewedAt = &now
		approved.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, uc.mapError(err)
	}

	// 4. Аудит и метрики после коммита
	uc.metrics.ObserveTransition(audit.ActionReservationApprove)
	uc.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ReviewerID,
		Action:     audit.ActionReservationApprove,
		TargetType: audit.TargetReservation,
		TargetID:   approved.ID,
		Success:    true,
		Diff: audit.Diff{}.
			Change("status", string(domain.StatusPending), string(domain.StatusApproved)),
	})

	uc.logger.Info("ApproveReservation: approved reservation id=%d", approved.ID)
	return models.FromDomainReservation(&approved, true), nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		return ErrReservationNotFound
	case errors.Is(err, reservationRepo.ErrStatusChanged):
		return ErrNotPending
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	uc.logger.Error("ApproveReservation: repository error: %v", err)
	return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
}
