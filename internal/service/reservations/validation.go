package reservations

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

func validateRejectReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" || utf8.RuneCountInString(reason) > domain.MaxReasonLength {
		return "", ErrInvalidRejectReason
	}
	return reason, nil
}

func validateCancelReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxReasonLength {
		return nil, ErrInvalidReason
	}
	return &trimmed, nil
}

func validateStatus(status *domain.ReservationStatus) error {
	if status != nil && !status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

func reviewWindow(req *models.ListForReviewRequest) (*domain.Interval, error) {
	if req.From == nil && req.To == nil {
		return nil, nil
	}
	if req.From == nil || req.To == nil {
		return nil, ErrInvalidWindow
	}
	window := domain.Interval{Start: *req.From, End: *req.To}
	if !window.IsValid() {
		return nil, ErrInvalidWindow
	}
	return &window, nil
}

func normalizePage(limit, offset uint64) (uint64, uint64) {
	if limit == 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}
	return limit, offset
}
