package usage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-FacilityService/internal/service/usage/models"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

// Options настройки агрегации
type Options struct {
	LeaderboardDays  []int
	LeaderboardLimit int
	MaxOverviewDays  int
}

// Service сервис обзоров занятости и рейтингов использования.
// Только чтение, без блокировок
type Service struct {
	buildingRepo    BuildingRepository
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	clock           Clock
	opts            Options
	logger          Logger
}

// NewService создает новый экземпляр сервиса агрегации
func NewService(
	buildingRepo BuildingRepository,
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	clock Clock,
	opts Options,
	logger Logger,
) *Service {
	if opts.MaxOverviewDays <= 0 {
		opts.MaxOverviewDays = domain.DefaultMaxOverviewDays
	}
	if opts.LeaderboardLimit <= 0 {
		opts.LeaderboardLimit = domain.DefaultLeaderboardLimit
	}
	if len(opts.LeaderboardDays) == 0 {
		opts.LeaderboardDays = domain.DefaultLeaderboardDays
	}
	return &Service{
		buildingRepo:    buildingRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		clock:           clock,
		opts:            opts,
		logger:          logger,
	}
}

// FloorOverview комнаты этажа и их активные бронирования, пересекающие [from, from+days)
func (s *Service) FloorOverview(ctx context.Context, req *models.FloorOverviewRequest) (*models.FloorOverviewResponse, error) {
	if err := s.validateDays(req.Days); err != nil {
		return nil, err
	}
	window := domain.NewWindow(s.windowStart(req.From), req.Days)

	var occupancy []domain.RoomOccupancy
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		if _, err := s.buildingRepo.GetByID(ctx, req.BuildingID); err != nil {
			return err
		}

		rooms, err := s.roomRepo.List(ctx, domain.RoomsFilter{
			BuildingID:      req.BuildingID,
			FloorNo:         &req.FloorNo,
			IncludeDisabled: true,
		})
		if err != nil {
			return err
		}

		occupancy, err = s.occupancy(ctx, rooms, window)
		return err
	})
	if err != nil {
		return nil, s.mapError("FloorOverview", err)
	}

	resp := &models.FloorOverviewResponse{
		BuildingID: req.BuildingID,
		FloorNo:    req.FloorNo,
		Window:     models.FromDomainWindow(window),
		Rooms:      make([]models.RoomOccupancyResponse, 0, len(occupancy)),
	}
	for _, o := range occupancy {
		resp.Rooms = append(resp.Rooms, models.FromDomainOccupancy(o))
	}
	return resp, nil
}

// RoomTimeline активные бронирования одной комнаты, пересекающие [from, from+days)
func (s *Service) RoomTimeline(ctx context.Context, req *models.RoomTimelineRequest) (*models.RoomTimelineResponse, error) {
	if err := s.validateDays(req.Days); err != nil {
		return nil, err
	}
	window := domain.NewWindow(s.windowStart(req.From), req.Days)

	var occupancy []domain.RoomOccupancy
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		room, err := s.roomRepo.GetByID(ctx, req.RoomID)
		if err != nil {
			return err
		}
		occupancy, err = s.occupancy(ctx, []*domain.Room{room}, window)
		return err
	})
	if err != nil {
		return nil, s.mapError("RoomTimeline", err)
	}

	return &models.RoomTimelineResponse{
		Window: models.FromDomainWindow(window),
		Room:   models.FromDomainOccupancy(occupancy[0]),
	}, nil
}

// Leaderboard рейтинг по утверждённому времени в окне [now-days, now)
func (s *Service) Leaderboard(ctx context.Context, req *models.LeaderboardRequest) (*models.LeaderboardResponse, error) {
	if !req.Scope.IsValid() {
		return nil, ErrInvalidScope
	}
	if !s.allowedLeaderboardDays(req.Days) {
		return nil, ErrInvalidLeaderboardDays
	}

	now := s.clock.Now()
	window := domain.Interval{Start: now.AddDate(0, 0, -req.Days), End: now}

	var entries []domain.LeaderboardEntry
	names := make(map[int64]string)
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{
			Statuses: []domain.ReservationStatus{domain.StatusApproved},
			Window:   &window,
		})
		if err != nil {
			return err
		}

		entries = rankUsage(reservations, window, req.Scope, s.opts.LeaderboardLimit)
		if req.Scope != domain.ScopeRoom || len(entries) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.EntityID)
		}
		rooms, err := s.roomRepo.GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		for _, room := range rooms {
			names[room.ID] = room.Name
		}
		return nil
	})
	if err != nil {
		return nil, s.mapError("Leaderboard", err)
	}

	resp := &models.LeaderboardResponse{
		Scope:   string(req.Scope),
		Days:    req.Days,
		Window:  models.FromDomainWindow(window),
		Entries: make([]models.LeaderboardEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		entry := models.LeaderboardEntryResponse{
			Rank:         e.Rank,
			EntityID:     e.EntityID,
			TotalSeconds: e.TotalSeconds,
		}
		if name, ok := names[e.EntityID]; ok {
			entry.Name = ptr.Ptr(name)
		}
		resp.Entries = append(resp.Entries, entry)
	}
	return resp, nil
}

func (s *Service) occupancy(ctx context.Context, rooms []*domain.Room, window domain.Interval) ([]domain.RoomOccupancy, error) {
	if len(rooms) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}

	reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{
		RoomIDs:  ids,
		Statuses: domain.ActiveStatuses,
		Window:   &window,
	})
	if err != nil {
		return nil, err
	}

	byRoom := make(map[int64][]*domain.Reservation, len(rooms))
	for _, r := range reservations {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	result := make([]domain.RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, domain.RoomOccupancy{Room: *room, Reservations: byRoom[room.ID]})
	}
	return result, nil
}

// windowStart начало окна обзора: без from берётся начало текущих суток UTC
func (s *Service) windowStart(from time.Time) time.Time {
	if from.IsZero() {
		return s.clock.Now().UTC().Truncate(24 * time.Hour)
	}
	return from
}

func (s *Service) validateDays(days int) error {
	if days < 1 || days > s.opts.MaxOverviewDays {
		return ErrInvalidDays
	}
	return nil
}

func (s *Service) allowedLeaderboardDays(days int) bool {
	for _, d := range s.opts.LeaderboardDays {
		if d == days {
			return true
		}
	}
	return false
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, catalogRepo.ErrBuildingNotFound):
		return ErrBuildingNotFound
	case errors.Is(err, catalogRepo.ErrRoomNotFound):
		return ErrRoomNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
