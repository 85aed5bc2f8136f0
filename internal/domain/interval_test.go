package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{Start: at("2025-01-01T10:00:00Z"), End: at("2025-01-01T12:00:00Z")}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"inside", Interval{at("2025-01-01T10:30:00Z"), at("2025-01-01T11:00:00Z")}, true},
		{"covers", Interval{at("2025-01-01T09:00:00Z"), at("2025-01-01T13:00:00Z")}, true},
		{"tail overlap", Interval{at("2025-01-01T11:59:00Z"), at("2025-01-01T13:00:00Z")}, true},
		{"touching after", Interval{at("2025-01-01T12:00:00Z"), at("2025-01-01T13:00:00Z")}, false},
		{"touching before", Interval{at("2025-01-01T09:00:00Z"), at("2025-01-01T10:00:00Z")}, false},
		{"disjoint", Interval{at("2025-01-02T10:00:00Z"), at("2025-01-02T12:00:00Z")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestOverlapSeconds(t *testing.T) {
	reservation := Interval{Start: at("2025-01-01T10:00:00Z"), End: at("2025-01-01T12:00:00Z")}

	window := NewWindow(at("2025-01-01T11:00:00Z"), 1)
	assert.Equal(t, at("2025-01-02T11:00:00Z"), window.End)
	assert.Equal(t, int64(3600), OverlapSeconds(reservation, window))

	assert.Equal(t, int64(7200), OverlapSeconds(reservation, NewWindow(at("2025-01-01T00:00:00Z"), 1)))
	assert.Equal(t, int64(0), OverlapSeconds(reservation, NewWindow(at("2025-01-01T12:00:00Z"), 1)))

	partial := Interval{Start: at("2025-01-01T11:00:00.900Z"), End: at("2025-01-01T11:00:02.500Z")}
	assert.Equal(t, int64(1), OverlapSeconds(partial, reservation))
}

func TestReservation_CanBeCancelled(t *testing.T) {
	now := at("2025-01-01T09:00:00Z")
	r := &Reservation{
		Status:  StatusApproved,
		StartAt: at("2025-01-01T10:00:00Z"),
		EndAt:   at("2025-01-01T11:00:00Z"),
	}
	assert.True(t, r.CanBeCancelled(now))
	assert.False(t, r.CanBeCancelled(at("2025-01-01T10:00:00Z")))
	assert.False(t, r.CanBeCancelled(at("2025-01-01T10:30:00Z")))

	r.Status = StatusRejected
	assert.False(t, r.CanBeCancelled(now))
}

func TestBan_IsActive(t *testing.T) {
	now := at("2025-01-01T09:00:00Z")
	expires := at("2025-01-02T09:00:00Z")
	revokedAt := at("2025-01-01T08:00:00Z")

	assert.True(t, (&Ban{}).IsActive(now))
	assert.True(t, (&Ban{ExpiresAt: &expires}).IsActive(now))
	assert.False(t, (&Ban{ExpiresAt: &expires}).IsActive(expires))
	assert.False(t, (&Ban{RevokedAt: &revokedAt}).IsActive(now))
}

func TestFacilityConfig(t *testing.T) {
	cfg := FacilityConfig{AuditRequired: true, MaxDurationHours: 1.5}
	assert.Equal(t, 90*time.Minute, cfg.MaxDuration())
	assert.Equal(t, StatusPending, cfg.InitialStatus())

	off := false
	patched := FacilityConfigPatch{AuditRequired: &off}.Apply(cfg)
	assert.Equal(t, StatusApproved, patched.InitialStatus())
	assert.Equal(t, 1.5, patched.MaxDurationHours)
}
