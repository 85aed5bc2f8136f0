package catalog

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

// ListBuildings возвращает здания, отсортированные по sort и id
func (s *Service) ListBuildings(ctx context.Context, includeDisabled bool) (*models.BuildingListResponse, error) {
	buildings, err := s.buildingRepo.List(ctx, includeDisabled)
	if err != nil {
		return nil, s.mapRepoError("ListBuildings", err, nil)
	}
	return models.FromDomainBuildingList(buildings), nil
}

// GetBuilding возвращает здание по ID
func (s *Service) GetBuilding(ctx context.Context, id int64) (*models.BuildingResponse, error) {
	building, err := s.buildingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetBuilding", err, nil)
	}
	return models.FromDomainBuilding(building), nil
}

// CreateBuilding создает здание
func (s *Service) CreateBuilding(ctx context.Context, req *models.CreateBuildingRequest) (*models.BuildingResponse, error) {
	s.logger.Info("CreateBuilding: creating building name=%q by user=%d", req.Name, req.ActorID)

	if err := s.requireManage(ctx, req.ActorID); err != nil {
		return nil, err
	}

	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}
	if err := validateRemark(req.Remark); err != nil {
		return nil, err
	}

	created, err := s.buildingRepo.Create(ctx, &domain.Building{
		Name:    name,
		Enabled: ptr.Deref(req.Enabled, true),
		Sort:    req.Sort,
		Remark:  req.Remark,
	})
	if err != nil {
		return nil, s.mapRepoError("CreateBuilding", err, ErrDuplicateBuildingName)
	}

	s.record(ctx, req.ActorID, audit.ActionBuildingCreate, audit.TargetBuilding, created.ID,
		audit.Diff{}.Change("name", nil, created.Name).Change("enabled", nil, created.Enabled))

	s.logger.Info("CreateBuilding: successfully created building id=%d", created.ID)
	return models.FromDomainBuilding(created), nil
}

// UpdateBuilding изменяет имя, порядок и примечание здания
func (s *Service) UpdateBuilding(ctx context.Context, req *models.UpdateBuildingRequest) (*models.BuildingResponse, error) {
	s.logger.Info("UpdateBuilding: updating building id=%d by user=%d", req.ID, req.ActorID)

	if err := s.requireManage(ctx, req.ActorID); err != nil {
		return nil, err
	}

	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}
	if err := validateRemark(req.Remark); err != nil {
		return nil, err
	}

	var before, after domain.Building
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		building, err := s.buildingRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		before = *building

		building.Name = name
		building.Sort = req.Sort
		building.Remark = req.Remark
		building.UpdatedAt = s.clock.Now()
		if err := s.buildingRepo.Update(ctx, building); err != nil {
			return err
		}
		after = *building
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("UpdateBuilding", err, ErrDuplicateBuildingName)
	}

	s.record(ctx, req.ActorID, audit.ActionBuildingUpdate, audit.TargetBuilding, req.ID,
		audit.Diff{}.
			Change("name", before.Name, after.Name).
			Change("sort", before.Sort, after.Sort).
			Change("remark", ptr.Deref(before.Remark, ""), ptr.Deref(after.Remark, "")))

	return models.FromDomainBuilding(&after), nil
}

// SetBuildingEnabled включает или выключает здание.
// Выключенное здание закрывает новые бронирования всех своих комнат, существующие не трогает
func (s *Service) SetBuildingEnabled(ctx context.Context, req *models.SetEnabledRequest) (*models.BuildingResponse, error) {
	s.logger.Info("SetBuildingEnabled: building id=%d enabled=%t by user=%d", req.ID, req.Enabled, req.ActorID)

	if err := s.requireManage(ctx, req.ActorID); err != nil {
		return nil, err
	}

	var before bool
	var updated *domain.Building
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		building, err := s.buildingRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		before = building.Enabled

		building.Enabled = req.Enabled
		building.UpdatedAt = s.clock.Now()
		if err := s.buildingRepo.Update(ctx, building); err != nil {
			return err
		}
		updated = building
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("SetBuildingEnabled", err, nil)
	}

	s.record(ctx, req.ActorID, audit.ActionBuildingToggle, audit.TargetBuilding, req.ID,
		audit.Diff{}.Change("enabled", before, req.Enabled))

	return models.FromDomainBuilding(updated), nil
}

// DeleteBuilding удаляет здание. Здание с комнатами удалить нельзя
func (s *Service) DeleteBuilding(ctx context.Context, actorID, id int64) error {
	s.logger.Info("DeleteBuilding: deleting building id=%d by user=%d", id, actorID)

	if err := s.requireManage(ctx, actorID); err != nil {
		return err
	}

	var name string
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		building, err := s.buildingRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		name = building.Name

		rooms, err := s.roomRepo.CountByBuilding(ctx, id)
		if err != nil {
			return err
		}
		if rooms > 0 {
			s.logger.Warn("DeleteBuilding: building id=%d still has %d rooms", id, rooms)
			return ErrBuildingHasRooms
		}

		return s.buildingRepo.SoftDelete(ctx, id, s.clock.Now())
	})
	if err != nil {
		return s.mapRepoError("DeleteBuilding", err, nil)
	}

	s.record(ctx, actorID, audit.ActionBuildingDelete, audit.TargetBuilding, id,
		audit.Diff{}.Change("name", name, nil))

	s.logger.Info("DeleteBuilding: successfully deleted building id=%d", id)
	return nil
}
