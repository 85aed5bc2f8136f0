package bans

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

func validateReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" || utf8.RuneCountInString(reason) > domain.MaxReasonLength {
		return "", ErrInvalidReason
	}
	return reason, nil
}

// resolveExpiry вычисляет срок бана: nil - бессрочный
func resolveExpiry(now time.Time, expiresAt *time.Time, durationHours *float64) (*time.Time, error) {
	if expiresAt != nil && durationHours != nil {
		return nil, ErrAmbiguousExpiry
	}

	if durationHours != nil {
		// верхняя граница держит time.Duration от переполнения
		if !(*durationHours > 0 && *durationHours <= domain.MaxBanDurationHours) {
			return nil, ErrInvalidDuration
		}
		expiry := now.Add(time.Duration(*durationHours * float64(time.Hour)))
		if !expiry.After(now) {
			return nil, ErrInvalidDuration
		}
		return &expiry, nil
	}

	if expiresAt != nil {
		if !expiresAt.After(now) {
			return nil, ErrInvalidExpiry
		}
		expiry := expiresAt.UTC()
		return &expiry, nil
	}

	return nil, nil
}
