package catalog

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

// ListRooms возвращает комнаты здания, опционально одного этажа
func (s *Service) ListRooms(ctx context.Context, buildingID int64, floorNo *int, includeDisabled bool) (*models.RoomListResponse, error) {
	if _, err := s.buildingRepo.GetByID(ctx, buildingID); err != nil {
		return nil, s.mapRepoError("ListRooms", err, nil)
	}

	rooms, err := s.roomRepo.List(ctx, domain.RoomsFilter{
		BuildingID:      buildingID,
		FloorNo:         floorNo,
		IncludeDisabled: includeDisabled,
	})
	if err != nil {
		return nil, s.mapRepoError("ListRooms", err, nil)
	}
	return models.FromDomainRoomList(rooms), nil
}

// ListFloors возвращает этажи здания, на которых есть комнаты, по возрастанию
func (s *Service) ListFloors(ctx context.Context, buildingID int64) (*models.FloorsResponse, error) {
	if _, err := s.buildingRepo.GetByID(ctx, buildingID); err != nil {
		return nil, s.mapRepoError("ListFloors", err, nil)
	}

	floors, err := s.roomRepo.ListFloors(ctx, buildingID)
	if err != nil {
		return nil, s.mapRepoError("ListFloors", err, nil)
	}
	return &models.FloorsResponse{BuildingID: buildingID, Floors: floors}, nil
}

// GetRoom возвращает комнату по ID
func (s *Service) GetRoom(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetRoom", err, nil)
	}
	return models.FromDomainRoom(room), nil
}

// CreateRoom создает комнату в здании
func (s *Service) CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("CreateRoom: creating room name=%q in building=%d by user=%d", req.Name, req.BuildingID, req.ActorID)

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
	if err := validateCapacity(req.Capacity); err != nil {
		return nil, err
	}

	var created *domain.Room
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// Блокируем здание, чтобы его нельзя было удалить параллельно
		if _, err := s.buildingRepo.GetByID(ctx, req.BuildingID); err != nil {
			return err
		}

		room, err := s.roomRepo.Create(ctx, &domain.Room{
			BuildingID: req.BuildingID,
			FloorNo:    req.FloorNo,
			Name:       name,
			Capacity:   req.Capacity,
			Enabled:    ptr.Deref(req.Enabled, true),
			Sort:       req.Sort,
			Remark:     req.Remark,
		})
		if err != nil {
			return err
		}
		created = room
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("CreateRoom", err, ErrDuplicateRoomName)
	}

	s.record(ctx, req.ActorID, audit.ActionRoomCreate, audit.TargetRoom, created.ID,
		audit.Diff{}.
			Change("buildingId", nil, created.BuildingID).
			Change("floorNo", nil, created.FloorNo).
			Change("name", nil, created.Name))

	s.logger.Info("CreateRoom: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// UpdateRoom изменяет этаж, имя, вместимость, порядок и примечание комнаты
func (s *Service) UpdateRoom(ctx context.Context, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("UpdateRoom: updating room id=%d by user=%d", req.ID, req.ActorID)

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
	if err := validateCapacity(req.Capacity); err != nil {
		return nil, err
	}

	var before, after domain.Room
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		room, err := s.roomRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		before = *room

		room.FloorNo = req.FloorNo
		room.Name = name
		room.Capacity = req.Capacity
		room.Sort = req.Sort
		room.Remark = req.Remark
		room.UpdatedAt = s.clock.Now()
		if err := s.roomRepo.Update(ctx, room); err != nil {
			return err
		}
		after = *room
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("UpdateRoom", err, ErrDuplicateRoomName)
	}

	s.record(ctx, req.ActorID, audit.ActionRoomUpdate, audit.TargetRoom, req.ID,
		audit.Diff{}.
			Change("floorNo", before.FloorNo, after.FloorNo).
			Change("name", before.Name, after.Name).
			Change("capacity", ptr.Deref(before.Capacity, 0), ptr.Deref(after.Capacity, 0)).
			Change("sort", before.Sort, after.Sort).
			Change("remark", ptr.Deref(before.Remark, ""), ptr.Deref(after.Remark, "")))

	return models.FromDomainRoom(&after), nil
}

// SetRoomEnabled включает или выключает комнату для новых бронирований
func (s *Service) SetRoomEnabled(ctx context.Context, req *models.SetEnabledRequest) (*models.RoomResponse, error) {
	s.logger.Info("SetRoomEnabled: room id=%d enabled=%t by user=%d", req.ID, req.Enabled, req.ActorID)

	if err := s.requireManage(ctx, req.ActorID); err != nil {
		return nil, err
	}

	var before bool
	var updated *domain.Room
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		room, err := s.roomRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		before = room.Enabled

		room.Enabled = req.Enabled
		room.UpdatedAt = s.clock.Now()
		if err := s.roomRepo.Update(ctx, room); err != nil {
			return err
		}
		updated = room
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("SetRoomEnabled", err, nil)
	}

	s.record(ctx, req.ActorID, audit.ActionRoomToggle, audit.TargetRoom, req.ID,
		audit.Diff{}.Change("enabled", before, req.Enabled))

	return models.FromDomainRoom(updated), nil
}

// DeleteRoom удаляет комнату. Комнату с активными бронированиями удалить нельзя.
// Берёт ту же блокировку комнаты, что и проверка допуска, поэтому
// новое бронирование не может появиться между подсчётом и удалением
func (s *Service) DeleteRoom(ctx context.Context, actorID, id int64) error {
	s.logger.Info("DeleteRoom: deleting room id=%d by user=%d", id, actorID)

	if err := s.requireManage(ctx, actorID); err != nil {
		return err
	}

	var name string
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.reservationRepo.LockRoom(ctx, id); err != nil {
			return err
		}

		room, err := s.roomRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		name = room.Name

		active, err := s.reservationRepo.CountActiveByRoom(ctx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			s.logger.Warn("DeleteRoom: room id=%d has %d active reservations", id, active)
			return ErrRoomHasReservations
		}

		return s.roomRepo.SoftDelete(ctx, id, s.clock.Now())
	})
	if err != nil {
		return s.mapRepoError("DeleteRoom", err, nil)
	}

	s.record(ctx, actorID, audit.ActionRoomDelete, audit.TargetRoom, id,
		audit.Diff{}.Change("name", name, nil))

	s.logger.Info("DeleteRoom: successfully deleted room id=%d", id)
	return nil
}
