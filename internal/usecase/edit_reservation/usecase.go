package edit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FacilityService/internal/usecase/admission"
	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
)

// UseCase use case для изменения заявки заявителем
type UseCase struct {
	reservationRepo ReservationRepository
	checker         AdmissionChecker
	configProvider  ConfigProvider
	auditor         AuditRecorder
	metrics         MetricsObserver
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	checker AdmissionChecker,
	configProvider ConfigProvider,
	auditor AuditRecorder,
	metrics MetricsObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		configProvider:  configProvider,
		auditor:         auditor,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case изменения заявки.
// Допуск проверяется заново с исключением самой заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("EditReservation: user=%d, reservation=%d, interval [%s, %s)",
		req.ApplicantUserID, req.ReservationID, req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	purpose, participants, err := admission.NormalizeDetails(req.Purpose, req.ParticipantUserIDs)
	if err != nil {
		uc.logger.Warn("EditReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Комната нужна до транзакции, чтобы взять её блокировку
	current, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		return nil, uc.mapError(err)
	}
	if current.ApplicantUserID != req.ApplicantUserID {
		uc.logger.Warn("EditReservation: reservation id=%d does not belong to user=%d", req.ReservationID, req.ApplicantUserID)
		return nil, ErrReservationNotFound
	}

	// 3. Конфигурация читается один раз и передаётся в проверку значением
	cfg, err := uc.configProvider.Current(ctx)
	if err != nil {
		uc.logger.Error("EditReservation: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 4. Повторное чтение, проверка допуска и запись под блокировкой комнаты
	var before, after domain.Reservation
	err = uc.checker.WithRoomLock(ctx, current.RoomID, func(txCtx context.Context) error {
		locked, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			return err
		}
		if !locked.CanBeEdited() {
			uc.logger.Warn("EditReservation: reservation id=%d has status=%s", locked.ID, locked.Status)
			return ErrNotEditable
		}

		err = uc.checker.Check(txCtx, cfg, admission.Candidate{
			RoomID:               locked.RoomID,
			ApplicantUserID:      locked.ApplicantUserID,
			Interval:             domain.Interval{Start: req.StartAt, End: req.EndAt},
			ExcludeReservationID: &locked.ID,
		})
		if err != nil {
			return err
		}

		before = *locked
		after = *locked
		after.StartAt = req.StartAt
		after.EndAt = req.EndAt
		after.Purpose = purpose
		after.ParticipantUserIDs = participants
		after.UpdatedAt = uc.checker.Now()

		return uc.reservationRepo.UpdateDetails(txCtx, &after)
	})
	if err != nil {
		return nil, uc.mapError(err)
	}

	// 5. Аудит и метрики после коммита
	uc.metrics.ObserveTransition(audit.ActionReservationEdit)
	uc.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ApplicantUserID,
		Action:     audit.ActionReservationEdit,
		TargetType: audit.TargetReservation,
		TargetID:   after.ID,
		Success:    true,
		Diff: audit.Diff{}.
			Change("startAt", before.StartAt, after.StartAt).
			Change("endAt", before.EndAt, after.EndAt).
			Change("purpose", before.Purpose, after.Purpose).
			Change("participantCount", len(before.ParticipantUserIDs), len(after.ParticipantUserIDs)),
	})

	uc.logger.Info("EditReservation: updated reservation id=%d", after.ID)
	return models.FromDomainReservation(&after, false), nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		return ErrReservationNotFound
	case errors.Is(err, reservationRepo.ErrStatusChanged):
		return ErrNotEditable
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	uc.logger.Error("EditReservation: repository error: %v", err)
	return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
}
