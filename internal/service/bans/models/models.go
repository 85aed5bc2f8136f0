package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Request модели

// CreateBanRequest запрос на бан пользователя.
// Нужно указать не более одного из ExpiresAt и DurationHours; без них бан бессрочный
type CreateBanRequest struct {
	ActorID       int64      `json:"-"`
	UserID        int64      `json:"userId"`
	Reason        string     `json:"reason"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	DurationHours *float64   `json:"durationHours,omitempty"`
}

// RevokeBanRequest запрос на отзыв бана
type RevokeBanRequest struct {
	ActorID int64  `json:"-"`
	BanID   int64  `json:"-"`
	Reason  string `json:"reason"`
}

// ExtendBanRequest запрос на продление бана: активная строка отзывается
// и добавляется новая с новым сроком. Без срока новый бан бессрочный
type ExtendBanRequest struct {
	ActorID       int64      `json:"-"`
	BanID         int64      `json:"-"`
	Reason        string     `json:"reason"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	DurationHours *float64   `json:"durationHours,omitempty"`
}

// Response модели

// BanResponse ответ с данными бана
type BanResponse struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	Reason       string     `json:"reason"`
	CreatedBy    int64      `json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	RevokedBy    *int64     `json:"revokedBy,omitempty"`
	RevokedAt    *time.Time `json:"revokedAt,omitempty"`
	RevokeReason *string    `json:"revokeReason,omitempty"`
	Active       bool       `json:"active"`
}

// BanListResponse ответ со списком банов
type BanListResponse struct {
	Bans []BanResponse `json:"bans"`
}

// ExtendBanResponse ответ на продление: отозванная и новая строки
type ExtendBanResponse struct {
	Previous BanResponse `json:"previous"`
	Current  BanResponse `json:"current"`
}

// FromDomainBan конвертирует domain модель в DTO
func FromDomainBan(b *domain.Ban, now time.Time) *BanResponse {
	if b == nil {
		return nil
	}
	return &BanResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		Reason:       b.Reason,
		CreatedBy:    b.CreatedBy,
		CreatedAt:    b.CreatedAt,
		ExpiresAt:    b.ExpiresAt,
		RevokedBy:    b.RevokedBy,
		RevokedAt:    b.RevokedAt,
		RevokeReason: b.RevokeReason,
		Active:       b.IsActive(now),
	}
}

// FromDomainBanList конвертирует список банов в DTO
func FromDomainBanList(bans []*domain.Ban, now time.Time) *BanListResponse {
	resp := &BanListResponse{Bans: make([]BanResponse, 0, len(bans))}
	for _, b := range bans {
		resp.Bans = append(resp.Bans, *FromDomainBan(b, now))
	}
	return resp
}
