package domain

import "time"

// Building is a facility building; rooms exist only under a building
type Building struct {
	ID        int64
	Name      string
	Enabled   bool
	Sort      int
	Remark    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room is a bookable room owned by exactly one building
type Room struct {
	ID         int64
	BuildingID int64
	FloorNo    int // negative = below ground
	Name       string
	Capacity   *int
	Enabled    bool
	Sort       int
	Remark     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RoomWithBuilding room joined with the enabled flag of its building
type RoomWithBuilding struct {
	Room
	BuildingName    string
	BuildingEnabled bool
}

// IsBookable returns true if new reservations may be made for the room.
// Existing reservations are not affected by this flag.
func (r *RoomWithBuilding) IsBookable() bool {
	return r.Enabled && r.BuildingEnabled
}

// RoomsFilter filter for listing rooms
type RoomsFilter struct {
	BuildingID      int64
	FloorNo         *int
	IncludeDisabled bool
}
