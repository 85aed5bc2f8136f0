package domain

import "time"

// FacilityConfig global admission flags. There is exactly one row;
// changes apply to future admission checks only.
type FacilityConfig struct {
	AuditRequired    bool
	MaxDurationHours float64
	UpdatedBy        *int64
	UpdatedAt        time.Time
}

// MaxDuration returns the booking length cap as a duration
func (c FacilityConfig) MaxDuration() time.Duration {
	return time.Duration(c.MaxDurationHours * float64(time.Hour))
}

// InitialStatus returns the status a freshly admitted reservation gets
func (c FacilityConfig) InitialStatus() ReservationStatus {
	if c.AuditRequired {
		return StatusPending
	}
	return StatusApproved
}

// FacilityConfigPatch partial update of the config
type FacilityConfigPatch struct {
	AuditRequired    *bool
	MaxDurationHours *float64
}

// IsEmpty returns true if the patch changes nothing
func (p FacilityConfigPatch) IsEmpty() bool {
	return p.AuditRequired == nil && p.MaxDurationHours == nil
}

// Apply returns a copy of c with the patch applied
func (p FacilityConfigPatch) Apply(c FacilityConfig) FacilityConfig {
	if p.AuditRequired != nil {
		c.AuditRequired = *p.AuditRequired
	}
	if p.MaxDurationHours != nil {
		c.MaxDurationHours = *p.MaxDurationHours
	}
	return c
}
