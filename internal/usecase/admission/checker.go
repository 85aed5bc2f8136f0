package admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
	"github.com/m04kA/SMC-FacilityService/pkg/pgerr"
)

// Checker проверка допуска бронирования и сериализация записи по комнате
type Checker struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	bans            BanChecker
	txManager       TransactionManager
	metrics         MetricsObserver
	clock           Clock
	maxHorizon      time.Duration
	logger          Logger
}

// NewChecker создает новый экземпляр проверки допуска
func NewChecker(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	bans BanChecker,
	txManager TransactionManager,
	metrics MetricsObserver,
	clock Clock,
	maxHorizonDays int,
	logger Logger,
) *Checker {
	return &Checker{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		bans:            bans,
		txManager:       txManager,
		metrics:         metrics,
		clock:           clock,
		maxHorizon:      time.Duration(maxHorizonDays) * 24 * time.Hour,
		logger:          logger,
	}
}

// Now текущее время по часам проверки
func (c *Checker) Now() time.Time {
	return c.clock.Now()
}

// WithRoomLock выполняет fn в транзакции READ COMMITTED под advisory-блокировкой комнаты.
// Каждый запрос внутри fn видит строки, зафиксированные до получения блокировки,
// поэтому две параллельные заявки на одну комнату не увидят "нет конфликта" одновременно.
// Ограничение исключения остаётся последним рубежом: его нарушение и deadlock
// возвращаются как ErrTimeConflict
func (c *Checker) WithRoomLock(ctx context.Context, roomID int64, fn func(ctx context.Context) error) error {
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		if err := c.reservationRepo.LockRoom(ctx, roomID); err != nil {
			return err
		}
		return fn(ctx)
	})
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, reservationRepo.ErrTimeConflict):
		c.logger.Warn("WithRoomLock: exclusion constraint rejected write for room=%d", roomID)
		c.metrics.ObserveAdmission(ResultConflict)
		return ErrTimeConflict
	case pgerr.IsSerializationFailure(err):
		c.logger.Warn("WithRoomLock: concurrent write aborted for room=%d: %v", roomID, err)
		c.metrics.ObserveAdmission(ResultConflict)
		return ErrTimeConflict
	}
	return err
}

// Check проверяет заявку по порядку, первая ошибка побеждает:
// интервал, лимит длительности, доступность комнаты, бан, пересечения.
// Конфигурация передаётся значением, прочитанным один раз на запрос
func (c *Checker) Check(ctx context.Context, cfg domain.FacilityConfig, cand Candidate) error {
	now := c.clock.Now()

	if err := c.checkInterval(cand.Interval, now); err != nil {
		return c.reject(ResultInvalidInterval, cand, err)
	}

	if cand.Interval.Duration() > cfg.MaxDuration() {
		return c.reject(ResultDurationCap, cand, ErrDurationExceedsCap)
	}

	room, err := c.roomRepo.GetWithBuilding(ctx, cand.RoomID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			return c.reject(ResultRoomUnavailable, cand, ErrRoomUnavailable)
		}
		return c.internal("Check", err)
	}
	if !room.IsBookable() {
		return c.reject(ResultRoomUnavailable, cand, ErrRoomUnavailable)
	}

	banned, err := c.bans.IsBanned(ctx, cand.ApplicantUserID, now)
	if err != nil {
		return c.internal("Check", err)
	}
	if banned {
		return c.reject(ResultBanned, cand, ErrBanned)
	}

	overlapping, err := c.reservationRepo.FindOverlapping(ctx, cand.RoomID, cand.Interval, cand.ExcludeReservationID)
	if err != nil {
		return c.internal("Check", err)
	}
	if len(overlapping) > 0 {
		c.logger.Info("Check: room=%d overlaps reservation id=%d", cand.RoomID, overlapping[0].ID)
		return c.reject(ResultConflict, cand, ErrTimeConflict)
	}

	c.metrics.ObserveAdmission(ResultAdmitted)
	return nil
}

// CheckApproval повторно проверяет пересечения перед утверждением.
// Учитываются только утверждённые бронирования: из двух пересекающихся заявок
// утверждается первая, вторая получает ErrTimeConflict
func (c *Checker) CheckApproval(ctx context.Context, reservation *domain.Reservation) error {
	interval := reservation.Interval()
	overlapping, err := c.reservationRepo.List(ctx, domain.ReservationsFilter{
		RoomIDs:   []int64{reservation.RoomID},
		Statuses:  []domain.ReservationStatus{domain.StatusApproved},
		Window:    &interval,
		ExcludeID: &reservation.ID,
		Limit:     1,
	})
	if err != nil {
		return c.internal("CheckApproval", err)
	}
	if len(overlapping) > 0 {
		c.logger.Warn("CheckApproval: reservation id=%d overlaps approved id=%d", reservation.ID, overlapping[0].ID)
		c.metrics.ObserveAdmission(ResultConflict)
		return ErrTimeConflict
	}
	return nil
}

func (c *Checker) checkInterval(interval domain.Interval, now time.Time) error {
	if !interval.IsValid() {
		return ErrInvalidInterval
	}
	if interval.Start.Before(now) {
		return ErrStartInPast
	}
	if c.maxHorizon > 0 && interval.End.After(now.Add(c.maxHorizon)) {
		return ErrBeyondHorizon
	}
	return nil
}

func (c *Checker) reject(result string, cand Candidate, err error) error {
	c.metrics.ObserveAdmission(result)
	if appErr, ok := apperror.As(err); ok {
		c.logger.Warn("Check: rejected room=%d applicant=%d: %s", cand.RoomID, cand.ApplicantUserID, appErr.Message)
	}
	return err
}

func (c *Checker) internal(op string, err error) error {
	if apperror.KindOf(err) != apperror.Internal {
		return err
	}
	c.logger.Error("%s: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
