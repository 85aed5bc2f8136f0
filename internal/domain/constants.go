package domain

// Default configuration values
const (
	DefaultAuditRequired    = true
	DefaultMaxDurationHours = 4.0
	DefaultMaxHorizonDays   = 180
	DefaultMaxOverviewDays  = 31
	DefaultLeaderboardLimit = 20
)

// Business validation constants
const (
	MaxNameLength         = 100
	MaxRemarkLength       = 500
	MaxPurposeLength      = 500
	MaxReasonLength       = 500
	MaxParticipants       = 50
	MaxDurationHoursLimit = 24 * 7
	MaxBanDurationHours   = 24 * 365 * 10
	DefaultListLimit      = 50
	MaxListLimit          = 200
)

// DefaultLeaderboardDays allowed leaderboard windows in days
var DefaultLeaderboardDays = []int{7, 30}

// ActiveStatuses statuses that take part in conflict detection
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
}

// Permission codes checked through the access service
const (
	PermissionCatalogManage     = "facility.catalog.manage"
	PermissionReservationReview = "facility.reservation.review"
	PermissionBanManage         = "facility.ban.manage"
	PermissionConfigUpdate      = "facility.config.update"
)
