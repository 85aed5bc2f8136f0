package testfixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/reservation"
)

type txKey struct{}

// Store is an in-memory stand-in for the PostgreSQL repositories used by the
// reservation flows. Transactions run one at a time and roll back on error,
// and inserts honour the room/interval exclusion constraint.
type Store struct {
	txMu sync.Mutex

	mu           sync.Mutex
	rooms        map[int64]*domain.RoomWithBuilding
	reservations map[int64]*domain.Reservation
	bans         []*domain.Ban
	config       domain.FacilityConfig
	nextID       int64
	roomLocks    int
}

// NewStore returns an empty store with the default facility config.
func NewStore() *Store {
	return &Store{
		rooms:        make(map[int64]*domain.RoomWithBuilding),
		reservations: make(map[int64]*domain.Reservation),
		config: domain.FacilityConfig{
			AuditRequired:    domain.DefaultAuditRequired,
			MaxDurationHours: domain.DefaultMaxDurationHours,
		},
		nextID: 1000,
	}
}

// ----------------------------- Seeding -----------------------------

// AddRoom stores a room.
func (s *Store) AddRoom(room *domain.RoomWithBuilding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *room
	s.rooms[room.ID] = &copied
}

// Seed stores reservations as-is, bypassing the exclusion constraint.
func (s *Store) Seed(reservations ...*domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range reservations {
		s.reservations[r.ID] = cloneReservation(r)
	}
}

// AddBan stores a ban row.
func (s *Store) AddBan(ban domain.Ban) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bans = append(s.bans, &ban)
}

// SetConfig replaces the facility config.
func (s *Store) SetConfig(cfg domain.FacilityConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
}

// Reservation returns a copy of the stored reservation or nil.
func (s *Store) Reservation(id int64) *domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil
	}
	return cloneReservation(r)
}

// Reservations returns copies of all stored reservations ordered by id.
func (s *Store) Reservations() []*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		result = append(result, cloneReservation(r))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// RoomLocks returns how many times a room lock was taken.
func (s *Store) RoomLocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomLocks
}

// ----------------------------- Transactions -----------------------------

// Do runs fn as a transaction. Nested calls join the outer transaction.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

// DoReadOnly runs fn as a transaction.
func (s *Store) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

func (s *Store) snapshot() map[int64]*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[int64]*domain.Reservation, len(s.reservations))
	for id, r := range s.reservations {
		snapshot[id] = cloneReservation(r)
	}
	return snapshot
}

func (s *Store) restore(snapshot map[int64]*domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = snapshot
}

// ----------------------------- Catalog -----------------------------

// GetWithBuilding returns the room joined with its building.
func (s *Store) GetWithBuilding(_ context.Context, id int64) (*domain.RoomWithBuilding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, catalogRepo.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

// ----------------------------- Bans and config -----------------------------

// IsBanned reports whether the user has an active ban at now.
func (s *Store) IsBanned(_ context.Context, userID int64, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ban := range s.bans {
		if ban.UserID == userID && ban.IsActive(now) {
			return true, nil
		}
	}
	return false, nil
}

// Current returns the facility config.
func (s *Store) Current(_ context.Context) (domain.FacilityConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config, nil
}

// ----------------------------- Reservations -----------------------------

// LockRoom requires a transaction, like the advisory lock it replaces.
func (s *Store) LockRoom(ctx context.Context, _ int64) error {
	if ctx.Value(txKey{}) == nil {
		return reservationRepo.ErrTransactionRequired
	}
	s.mu.Lock()
	s.roomLocks++
	s.mu.Unlock()
	return nil
}

// Create inserts a reservation and assigns it an id.
func (s *Store) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.violatesExclusion(reservation) {
		return nil, reservationRepo.ErrTimeConflict
	}

	s.nextID++
	created := cloneReservation(reservation)
	created.ID = s.nextID
	s.reservations[created.ID] = created
	return cloneReservation(created), nil
}

// GetByID returns a copy of the reservation.
func (s *Store) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return cloneReservation(r), nil
}

// List applies the filter with the repository's ordering (start_at, id).
func (s *Store) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.Reservation
	for _, r := range s.reservations {
		if matches(r, filter) {
			result = append(result, cloneReservation(r))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartAt.Equal(result[j].StartAt) {
			return result[i].StartAt.Before(result[j].StartAt)
		}
		return result[i].ID < result[j].ID
	})

	if filter.Offset >= uint64(len(result)) {
		return []*domain.Reservation{}, nil
	}
	result = result[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < uint64(len(result)) {
		result = result[:filter.Limit]
	}
	return result, nil
}

// FindOverlapping returns active reservations of the room intersecting the interval.
func (s *Store) FindOverlapping(ctx context.Context, roomID int64, interval domain.Interval, excludeID *int64) ([]*domain.Reservation, error) {
	return s.List(ctx, domain.ReservationsFilter{
		RoomIDs:   []int64{roomID},
		Statuses:  domain.ActiveStatuses,
		Window:    &interval,
		ExcludeID: excludeID,
	})
}

// CountActiveByRoom counts pending and approved reservations of the room.
func (s *Store) CountActiveByRoom(_ context.Context, roomID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, r := range s.reservations {
		if r.RoomID == roomID && r.IsActive() {
			count++
		}
	}
	return count, nil
}

// UpdateDetails updates a pending reservation.
func (s *Store) UpdateDetails(_ context.Context, reservation *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.reservations[reservation.ID]
	if !ok || stored.Status != domain.StatusPending {
		return reservationRepo.ErrStatusChanged
	}
	updated := cloneReservation(stored)
	updated.StartAt = reservation.StartAt
	updated.EndAt = reservation.EndAt
	updated.Purpose = reservation.Purpose
	updated.ParticipantUserIDs = append([]int64(nil), reservation.ParticipantUserIDs...)
	updated.UpdatedAt = reservation.UpdatedAt
	if s.violatesExclusion(updated) {
		return reservationRepo.ErrTimeConflict
	}
	s.reservations[updated.ID] = updated
	return nil
}

// UpdateStatus applies a status transition guarded by the From statuses.
func (s *Store) UpdateStatus(_ context.Context, t reservationRepo.Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.reservations[t.ID]
	if !ok {
		return reservationRepo.ErrStatusChanged
	}
	if len(t.From) > 0 && !containsStatus(t.From, stored.Status) {
		return reservationRepo.ErrStatusChanged
	}

	stored.Status = t.To
	stored.UpdatedAt = t.At
	if t.ReviewedBy != nil {
		reviewedBy := *t.ReviewedBy
		stored.ReviewedBy = &reviewedBy
		stored.ReviewedAt = t.ReviewedAt
	}
	if t.RejectReason != nil {
		reason := *t.RejectReason
		stored.RejectReason = &reason
	}
	return nil
}

func (s *Store) violatesExclusion(candidate *domain.Reservation) bool {
	if !candidate.IsActive() {
		return false
	}
	for _, r := range s.reservations {
		if r.ID == candidate.ID || r.RoomID != candidate.RoomID || !r.IsActive() {
			continue
		}
		if r.Interval().Overlaps(candidate.Interval()) {
			return true
		}
	}
	return false
}

func matches(r *domain.Reservation, filter domain.ReservationsFilter) bool {
	if len(filter.RoomIDs) > 0 && !containsID(filter.RoomIDs, r.RoomID) {
		return false
	}
	if filter.ApplicantUserID != nil && r.ApplicantUserID != *filter.ApplicantUserID {
		return false
	}
	if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, r.Status) {
		return false
	}
	if filter.Window != nil && !r.Interval().Overlaps(*filter.Window) {
		return false
	}
	if filter.ExcludeID != nil && r.ID == *filter.ExcludeID {
		return false
	}
	return true
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func containsStatus(statuses []domain.ReservationStatus, status domain.ReservationStatus) bool {
	for _, v := range statuses {
		if v == status {
			return true
		}
	}
	return false
}

func cloneReservation(r *domain.Reservation) *domain.Reservation {
	copied := *r
	copied.ParticipantUserIDs = append([]int64(nil), r.ParticipantUserIDs...)
	return &copied
}
