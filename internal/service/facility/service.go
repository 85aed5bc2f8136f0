package facility

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityService/internal/service/facility/models"
)

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Service сервис глобальной конфигурации бронирования.
// Значения по умолчанию действуют, пока конфигурация ни разу не сохранялась
type Service struct {
	configRepo ConfigRepository
	guard      PermissionGuard
	auditor    AuditRecorder
	txManager  TransactionManager
	clock      Clock
	defaults   domain.FacilityConfig
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	guard PermissionGuard,
	auditor AuditRecorder,
	txManager TransactionManager,
	clock Clock,
	defaults domain.FacilityConfig,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		guard:      guard,
		auditor:    auditor,
		txManager:  txManager,
		clock:      clock,
		defaults:   defaults,
		logger:     logger,
	}
}

// Current возвращает действующую конфигурацию как значение.
// Читается один раз на проверку допуска и передаётся в неё параметром
func (s *Service) Current(ctx context.Context) (domain.FacilityConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrConfigNotFound) {
			return s.defaults, nil
		}
		s.logger.Error("Current: repository error: %v", err)
		return domain.FacilityConfig{}, fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}
	return *cfg, nil
}

// GetConfig возвращает конфигурацию
func (s *Service) GetConfig(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(cfg), nil
}

// SetConfig применяет частичное изменение конфигурации.
// Изменения действуют только на будущие проверки допуска
func (s *Service) SetConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("SetConfig: updating config by user=%d", req.ActorID)

	if err := s.guard.Require(ctx, req.ActorID, domain.PermissionConfigUpdate); err != nil {
		return nil, err
	}

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	if patch.MaxDurationHours != nil {
		hours := *patch.MaxDurationHours
		if hours <= 0 || hours > domain.MaxDurationHoursLimit {
			s.logger.Warn("SetConfig: invalid maxDurationHours=%v", hours)
			return nil, ErrInvalidMaxDuration
		}
	}
	if utf8.RuneCountInString(req.Reason) > domain.MaxReasonLength {
		return nil, ErrInvalidReason
	}

	var before, after domain.FacilityConfig
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.Current(ctx)
		if err != nil {
			return err
		}
		before = current

		after = patch.Apply(current)
		after.UpdatedBy = &req.ActorID
		after.UpdatedAt = s.clock.Now()
		return s.configRepo.Upsert(ctx, &after)
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("SetConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetConfig - repository error: %v", ErrInternal, err)
	}

	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}
	s.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ActorID,
		Action:     audit.ActionConfigUpdate,
		TargetType: audit.TargetConfig,
		TargetID:   1,
		Success:    true,
		Reason:     reason,
		Diff: audit.Diff{}.
			Change("auditRequired", before.AuditRequired, after.AuditRequired).
			Change("maxDurationHours", before.MaxDurationHours, after.MaxDurationHours),
	})

	s.logger.Info("SetConfig: config updated auditRequired=%t maxDurationHours=%v",
		after.AuditRequired, after.MaxDurationHours)
	return models.FromDomainConfig(after), nil
}
