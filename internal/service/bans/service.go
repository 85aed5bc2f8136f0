package bans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	banRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/ban"
	"github.com/m04kA/SMC-FacilityService/internal/service/bans/models"
	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
)

// Service реестр банов модуля бронирования.
// Баны только запрещают создавать новые бронирования, существующие не отменяются
type Service struct {
	banRepo   BanRepository
	guard     PermissionGuard
	auditor   AuditRecorder
	txManager TransactionManager
	clock     Clock
	logger    Logger
}

// NewService создает новый экземпляр сервиса банов
func NewService(
	banRepo BanRepository,
	guard PermissionGuard,
	auditor AuditRecorder,
	txManager TransactionManager,
	clock Clock,
	logger Logger,
) *Service {
	return &Service{
		banRepo:   banRepo,
		guard:     guard,
		auditor:   auditor,
		txManager: txManager,
		clock:     clock,
		logger:    logger,
	}
}

// IsBanned true, если у пользователя есть активный на момент now бан
func (s *Service) IsBanned(ctx context.Context, userID int64, now time.Time) (bool, error) {
	ban, err := s.banRepo.GetActiveByUser(ctx, userID, now)
	if err != nil {
		s.logger.Error("IsBanned: repository error for user=%d: %v", userID, err)
		return false, fmt.Errorf("%w: IsBanned - repository error: %v", ErrInternal, err)
	}
	return ban != nil, nil
}

// ListActive возвращает все активные баны
func (s *Service) ListActive(ctx context.Context, actorID int64) (*models.BanListResponse, error) {
	if err := s.guard.Require(ctx, actorID, domain.PermissionBanManage); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	bans, err := s.banRepo.ListActive(ctx, now)
	if err != nil {
		return nil, s.internal("ListActive", err)
	}
	return models.FromDomainBanList(bans, now), nil
}

// ListHistory возвращает историю банов пользователя.
// Пользователь видит свою историю, чужую - только с правом управления банами
func (s *Service) ListHistory(ctx context.Context, actorID, userID int64) (*models.BanListResponse, error) {
	if actorID != userID {
		if err := s.guard.Require(ctx, actorID, domain.PermissionBanManage); err != nil {
			return nil, err
		}
	}

	bans, err := s.banRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.internal("ListHistory", err)
	}
	return models.FromDomainBanList(bans, s.clock.Now()), nil
}

// Ban добавляет новую строку бана. Предыдущие строки не трогаются;
// если у пользователя уже есть активный бан, возвращается ErrAlreadyBanned
func (s *Service) Ban(ctx context.Context, req *models.CreateBanRequest) (*models.BanResponse, error) {
	s.logger.Info("Ban: banning user=%d by user=%d", req.UserID, req.ActorID)

	if err := s.guard.Require(ctx, req.ActorID, domain.PermissionBanManage); err != nil {
		return nil, err
	}
	if req.UserID <= 0 {
		return nil, ErrInvalidUserID
	}
	reason, err := validateReason(req.Reason)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	expiresAt, err := resolveExpiry(now, req.ExpiresAt, req.DurationHours)
	if err != nil {
		return nil, err
	}

	var created *domain.Ban
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.banRepo.LockUser(ctx, req.UserID); err != nil {
			return err
		}

		active, err := s.banRepo.GetActiveByUser(ctx, req.UserID, now)
		if err != nil {
			return err
		}
		if active != nil {
			s.logger.Warn("Ban: user=%d already has active ban id=%d", req.UserID, active.ID)
			return ErrAlreadyBanned
		}

		created, err = s.banRepo.Create(ctx, &domain.Ban{
			UserID:    req.UserID,
			Reason:    reason,
			CreatedBy: req.ActorID,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		})
		return err
	})
	if err != nil {
		return nil, s.mapError("Ban", err)
	}

	s.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ActorID,
		Action:     audit.ActionBanCreate,
		TargetType: audit.TargetBan,
		TargetID:   created.ID,
		Success:    true,
		Reason:     &reason,
		Diff: audit.Diff{}.
			Change("userId", nil, created.UserID).
			Change("expiresAt", nil, formatExpiry(created.ExpiresAt)),
	})

	s.logger.Info("Ban: created ban id=%d for user=%d", created.ID, created.UserID)
	return models.FromDomainBan(created, now), nil
}

// Revoke отзывает активный бан. Неизвестный, отозванный или истёкший бан - ErrBanNotFound
func (s *Service) Revoke(ctx context.Context, req *models.RevokeBanRequest) (*models.BanResponse, error) {
	s.logger.Info("Revoke: revoking ban id=%d by user=%d", req.BanID, req.ActorID)

	if err := s.guard.Require(ctx, req.ActorID, domain.PermissionBanManage); err != nil {
		return nil, err
	}
	reason, err := validateReason(req.Reason)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var revoked *domain.Ban
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		revoked, err = s.revokeActive(ctx, req.BanID, req.ActorID, reason, now)
		return err
	})
	if err != nil {
		return nil, s.mapError("Revoke", err)
	}

	s.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ActorID,
		Action:     audit.ActionBanRevoke,
		TargetType: audit.TargetBan,
		TargetID:   revoked.ID,
		Success:    true,
		Reason:     &reason,
		Diff:       audit.Diff{}.Change("active", true, false),
	})

	return models.FromDomainBan(revoked, now), nil
}

// Extend заменяет активный бан новым сроком: текущая строка отзывается,
// новая добавляется в той же транзакции
func (s *Service) Extend(ctx context.Context, req *models.ExtendBanRequest) (*models.ExtendBanResponse, error) {
	s.logger.Info("Extend: extending ban id=%d by user=%d", req.BanID, req.ActorID)

	if err := s.guard.Require(ctx, req.ActorID, domain.PermissionBanManage); err != nil {
		return nil, err
	}
	reason, err := validateReason(req.Reason)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	expiresAt, err := resolveExpiry(now, req.ExpiresAt, req.DurationHours)
	if err != nil {
		return nil, err
	}

	var previous, current *domain.Ban
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		ban, err := s.banRepo.GetByID(ctx, req.BanID)
		if err != nil {
			return err
		}
		if err := s.banRepo.LockUser(ctx, ban.UserID); err != nil {
			return err
		}

		previous, err = s.revokeActive(ctx, req.BanID, req.ActorID, reason, now)
		if err != nil {
			return err
		}

		current, err = s.banRepo.Create(ctx, &domain.Ban{
			UserID:    previous.UserID,
			Reason:    reason,
			CreatedBy: req.ActorID,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		})
		return err
	})
	if err != nil {
		return nil, s.mapError("Extend", err)
	}

	s.auditor.Record(ctx, audit.Entry{
		ActorID:    req.ActorID,
		Action:     audit.ActionBanExtend,
		TargetType: audit.TargetBan,
		TargetID:   current.ID,
		Success:    true,
		Reason:     &reason,
		Diff: audit.Diff{}.
			Change("banId", previous.ID, current.ID).
			Change("expiresAt", formatExpiry(previous.ExpiresAt), formatExpiry(current.ExpiresAt)),
	})

	s.logger.Info("Extend: ban id=%d replaced by id=%d for user=%d", previous.ID, current.ID, current.UserID)
	return &models.ExtendBanResponse{
		Previous: *models.FromDomainBan(previous, now),
		Current:  *models.FromDomainBan(current, now),
	}, nil
}

// revokeActive отзывает бан, если он активен на момент now, и возвращает его новое состояние
func (s *Service) revokeActive(ctx context.Context, banID, actorID int64, reason string, now time.Time) (*domain.Ban, error) {
	ban, err := s.banRepo.GetByID(ctx, banID)
	if err != nil {
		return nil, err
	}
	if !ban.IsActive(now) {
		s.logger.Warn("revokeActive: ban id=%d is not active", banID)
		return nil, ErrBanNotFound
	}

	if err := s.banRepo.Revoke(ctx, banRepo.Revocation{
		BanID:     banID,
		RevokedBy: actorID,
		RevokedAt: now,
		Reason:    reason,
	}); err != nil {
		return nil, err
	}

	ban.RevokedBy = &actorID
	ban.RevokedAt = &now
	ban.RevokeReason = &reason
	return ban, nil
}

func (s *Service) mapError(op string, err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	if errors.Is(err, banRepo.ErrBanNotFound) || errors.Is(err, banRepo.ErrAlreadyRevoked) {
		return ErrBanNotFound
	}
	return s.internal(op, err)
}

func (s *Service) internal(op string, err error) error {
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func formatExpiry(expiresAt *time.Time) string {
	if expiresAt == nil {
		return "indefinite"
	}
	return expiresAt.UTC().Format(time.RFC3339)
}
