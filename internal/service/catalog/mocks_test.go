package catalog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

type mockBuildingRepo struct {
	mock.Mock
}

func (m *mockBuildingRepo) Create(ctx context.Context, b *domain.Building) (*domain.Building, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *mockBuildingRepo) GetByID(ctx context.Context, id int64) (*domain.Building, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *mockBuildingRepo) List(ctx context.Context, includeDisabled bool) ([]*domain.Building, error) {
	args := m.Called(ctx, includeDisabled)
	return args.Get(0).([]*domain.Building), args.Error(1)
}

func (m *mockBuildingRepo) Update(ctx context.Context, b *domain.Building) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBuildingRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) Create(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *mockRoomRepo) List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Room), args.Error(1)
}

func (m *mockRoomRepo) ListFloors(ctx context.Context, buildingID int64) ([]int, error) {
	args := m.Called(ctx, buildingID)
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockRoomRepo) CountByBuilding(ctx context.Context, buildingID int64) (int, error) {
	args := m.Called(ctx, buildingID)
	return args.Int(0), args.Error(1)
}

func (m *mockRoomRepo) Update(ctx context.Context, r *domain.Room) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRoomRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) LockRoom(ctx context.Context, roomID int64) error {
	return m.Called(ctx, roomID).Error(0)
}

func (m *mockReservationRepo) CountActiveByRoom(ctx context.Context, roomID int64) (int, error) {
	args := m.Called(ctx, roomID)
	return args.Int(0), args.Error(1)
}

type mockGuard struct {
	mock.Mock
}

func (m *mockGuard) Require(ctx context.Context, userID int64, code string) error {
	return m.Called(ctx, userID, code).Error(0)
}

type recordingAuditor struct {
	entries []audit.Entry
}

func (r *recordingAuditor) Record(_ context.Context, entry audit.Entry) {
	r.entries = append(r.entries, entry)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
