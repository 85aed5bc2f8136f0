package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsActive returns true for statuses that take part in conflict detection
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// IsTerminal returns true for statuses that can no longer change
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// Reservation represents a room booking for a single time interval
type Reservation struct {
	ID                 int64
	RoomID             int64
	ApplicantUserID    int64
	ParticipantUserIDs []int64
	Purpose            string
	StartAt            time.Time
	EndAt              time.Time
	Status             ReservationStatus

	RejectReason *string
	ReviewedBy   *int64
	ReviewedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the half-open interval [StartAt, EndAt)
func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartAt, End: r.EndAt}
}

// IsActive returns true if the reservation counts toward conflict detection
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// CanBeEdited returns true if the applicant may still change time, purpose or participants
func (r *Reservation) CanBeEdited() bool {
	return r.Status == StatusPending
}

// CanBeReviewed returns true if a reviewer may approve or reject the reservation
func (r *Reservation) CanBeReviewed() bool {
	return r.Status == StatusPending
}

// CanBeCancelled returns true if the reservation is active and has not started yet
func (r *Reservation) CanBeCancelled(now time.Time) bool {
	return r.IsActive() && r.StartAt.After(now)
}

// ReservationsFilter filter for listing reservations
type ReservationsFilter struct {
	RoomIDs         []int64
	ApplicantUserID *int64
	Statuses        []ReservationStatus
	// Window selects reservations whose interval intersects it
	Window *Interval
	// ExcludeID skips one reservation (used when re-validating an edit against itself)
	ExcludeID *int64
	Limit     uint64
	Offset    uint64
}
