package testfixtures

import (
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

var reservationCounter int64

var referenceTime = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical "now" used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// Hour returns ReferenceTime shifted by n hours.
func Hour(n int) time.Time {
	return referenceTime.Add(time.Duration(n) * time.Hour)
}

// ----------------------------- Catalog fixtures -----------------------------

// RoomOption configures a generated room.
type RoomOption func(*domain.RoomWithBuilding)

// NewRoom returns an enabled room in an enabled building.
func NewRoom(id, buildingID int64, opts ...RoomOption) *domain.RoomWithBuilding {
	room := &domain.RoomWithBuilding{
		Room: domain.Room{
			ID:         id,
			BuildingID: buildingID,
			FloorNo:    1,
			Name:       "Room",
			Enabled:    true,
			CreatedAt:  referenceTime,
			UpdatedAt:  referenceTime,
		},
		BuildingName:    "Main",
		BuildingEnabled: true,
	}
	for _, opt := range opts {
		opt(room)
	}
	return room
}

// WithFloor places the room on the given floor.
func WithFloor(floor int) RoomOption {
	return func(r *domain.RoomWithBuilding) {
		r.FloorNo = floor
	}
}

// WithRoomDisabled disables the room.
func WithRoomDisabled() RoomOption {
	return func(r *domain.RoomWithBuilding) {
		r.Enabled = false
	}
}

// WithBuildingDisabled disables the owning building.
func WithBuildingDisabled() RoomOption {
	return func(r *domain.RoomWithBuilding) {
		r.BuildingEnabled = false
	}
}

// ----------------------------- Reservation fixtures -----------------------------

// ReservationOption configures a generated reservation.
type ReservationOption func(*domain.Reservation)

// NewReservation returns an approved one-hour reservation starting at ReferenceTime+1h.
// IDs are unique across the test binary.
func NewReservation(roomID, applicantID int64, opts ...ReservationOption) *domain.Reservation {
	r := &domain.Reservation{
		ID:              atomic.AddInt64(&reservationCounter, 1),
		RoomID:          roomID,
		ApplicantUserID: applicantID,
		Purpose:         "meeting",
		StartAt:         Hour(1),
		EndAt:           Hour(2),
		Status:          domain.StatusApproved,
		CreatedAt:       referenceTime,
		UpdatedAt:       referenceTime,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithInterval sets the reservation interval.
func WithInterval(start, end time.Time) ReservationOption {
	return func(r *domain.Reservation) {
		r.StartAt = start
		r.EndAt = end
	}
}

// WithStatus sets the reservation status.
func WithStatus(status domain.ReservationStatus) ReservationOption {
	return func(r *domain.Reservation) {
		r.Status = status
	}
}
