package domain

import "time"

// Interval is a half-open time interval [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns the interval [from, from+days)
func NewWindow(from time.Time, days int) Interval {
	return Interval{Start: from, End: from.AddDate(0, 0, days)}
}

// IsValid returns true if End is strictly after Start
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports strict overlap: a.start < b.end && b.start < a.end.
// Touching intervals ([10:00,11:00) and [11:00,12:00)) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// OverlapSeconds returns the number of whole seconds shared by two intervals
func OverlapSeconds(a, b Interval) int64 {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	if !end.After(start) {
		return 0
	}
	return int64(end.Sub(start) / time.Second)
}
