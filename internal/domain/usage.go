package domain

// LeaderboardScope entity the leaderboard is grouped by
type LeaderboardScope string

const (
	ScopeRoom LeaderboardScope = "room"
	ScopeUser LeaderboardScope = "user"
)

// IsValid returns true for known scopes
func (s LeaderboardScope) IsValid() bool {
	return s == ScopeRoom || s == ScopeUser
}

// LeaderboardEntry accumulated approved usage of one entity within a window
type LeaderboardEntry struct {
	Rank         int
	EntityID     int64
	TotalSeconds int64
}

// RoomOccupancy a room and its active reservations within a window
type RoomOccupancy struct {
	Room         Room
	Reservations []*Reservation
}
