package create_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FacilityService/internal/usecase/admission"
	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка допуска и вставка выполняются в одной транзакции
// под блокировкой комнаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.ReservationResponse, error) {
	uc.logger.Info("CreateReservation: user=%d, room=%d, interval [%s, %s)",
		req.ApplicantUserID, req.RoomID, req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if req.RoomID <= 0 {
		return nil, ErrInvalidRoomID
	}
	purpose, participants, err := admission.NormalizeDetails(req.Purpose, req.ParticipantUserIDs)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Конфигурация читается один раз и передаётся в проверку значением
	cfg, err := uc.configProvider.Current(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	candidate := admission.Candidate{
		RoomID:          req.RoomID,
		ApplicantUserID: req.ApplicantUserID,
		Interval:        domain.Interval{Start: req.StartAt, End: req.EndAt},
	}

	// 3. Проверка допуска и вставка под блокировкой комнаты
	var created *domain.Reservation
	err = uc.checker.WithRoomLock(ctx, req.RoomID, func(txCtx context.Context) error {
		if err := uc.checker.Check(txCtx, cfg, candidate); err != nil {
			return err
		}

		now := uc.checker.Now()
		var err error
		created, err = uc.reservationRepo.Create(txCtx, &domain.Reservation{
			RoomID:             req.RoomID,
			ApplicantUserID:    req.ApplicantUserID,
			ParticipantUserIDs: participants,
			Purpose:            purpose,
			StartAt:            req.StartAt,
			EndAt:              req.EndAt,
			Status:             cfg.InitialStatus(),
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		return err
	})
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	// 4. Аудит и метрики после коммита
	uc.metrics.ObserveTransition(audit.ActionReservationCreate)
	uc.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ApplicantUserID,
		Action:     audit.ActionReservationCreate,
		TargetType: audit.TargetReservation,
		TargetID:   created.ID,
		Success:    true,
		Diff: audit.Diff{}.
			Change("roomId", nil, created.RoomID).
			Change("startAt", nil, created.StartAt).
			Change("endAt", nil, created.EndAt).
			Change("status", nil, string(created.Status)).
			Change("participantCount", nil, len(created.ParticipantUserIDs)),
	})

	uc.logger.Info("CreateReservation: created reservation id=%d with status=%s", created.ID, created.Status)
	return models.FromDomainReservation(created, false), nil
}
