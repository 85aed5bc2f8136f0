package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/catalog"
)

// Service сервис справочника зданий и комнат
type Service struct {
	buildingRepo    BuildingRepository
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	guard           PermissionGuard
	auditor         AuditRecorder
	txManager       TransactionManager
	clock           Clock
	logger          Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(
	buildingRepo BuildingRepository,
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	guard PermissionGuard,
	auditor AuditRecorder,
	txManager TransactionManager,
	clock Clock,
	logger Logger,
) *Service {
	return &Service{
		buildingRepo:    buildingRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		guard:           guard,
		auditor:         auditor,
		txManager:       txManager,
		clock:           clock,
		logger:          logger,
	}
}

// requireManage проверяет право на управление справочником
func (s *Service) requireManage(ctx context.Context, actorID int64) error {
	return s.guard.Require(ctx, actorID, domain.PermissionCatalogManage)
}

// mapRepoError переводит ошибки репозитория в ошибки сервиса.
// Ошибки сервиса, вернувшиеся из транзакции, пробрасываются как есть
func (s *Service) mapRepoError(op string, err error, duplicate error) error {
	switch {
	case isServiceError(err):
		return err
	case errors.Is(err, catalogRepo.ErrBuildingNotFound):
		return ErrBuildingNotFound
	case errors.Is(err, catalogRepo.ErrRoomNotFound):
		return ErrRoomNotFound
	case errors.Is(err, catalogRepo.ErrDuplicateName) && duplicate != nil:
		return duplicate
	}

	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func isServiceError(err error) bool {
	for _, target := range []error{
		ErrBuildingNotFound,
		ErrRoomNotFound,
		ErrDuplicateBuildingName,
		ErrDuplicateRoomName,
		ErrBuildingHasRooms,
		ErrRoomHasReservations,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (s *Service) record(ctx context.Context, actorID int64, action, target string, targetID int64, diff audit.Diff) {
	s.auditor.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     action,
		TargetType: target,
		TargetID:   targetID,
		Success:    true,
		Diff:       diff,
	})
}
