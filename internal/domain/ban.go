package domain

import "time"

// Ban is a module-level ban that blocks a user from creating reservations.
// Rows are append-only; revocation is recorded on the row, never deleted.
type Ban struct {
	ID           int64
	UserID       int64
	Reason       string
	CreatedBy    int64
	CreatedAt    time.Time
	ExpiresAt    *time.Time // nil = indefinite
	RevokedBy    *int64
	RevokedAt    *time.Time
	RevokeReason *string
}

// IsActive returns true if the ban is not revoked and not expired at now
func (b *Ban) IsActive(now time.Time) bool {
	if b.RevokedAt != nil {
		return false
	}
	return b.ExpiresAt == nil || b.ExpiresAt.After(now)
}

// IsIndefinite returns true if the ban has no expiry
func (b *Ban) IsIndefinite() bool {
	return b.ExpiresAt == nil
}
