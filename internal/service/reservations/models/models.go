package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования заявителем или ревьюером
type CancelReservationRequest struct {
	ActorID       int64   `json:"-"`
	ReservationID int64   `json:"-"`
	Reason        *string `json:"reason,omitempty"`
}

// RejectReservationRequest запрос на отклонение заявки
type RejectReservationRequest struct {
	ReviewerID    int64  `json:"-"`
	ReservationID int64  `json:"-"`
	Reason        string `json:"reason"`
}

// ListMineRequest фильтр бронирований заявителя
type ListMineRequest struct {
	UserID int64
	Status *domain.ReservationStatus
	Limit  uint64
	Offset uint64
}

// ListForReviewRequest фильтр очереди ревьюера
type ListForReviewRequest struct {
	ReviewerID int64
	Status     *domain.ReservationStatus // по умолчанию pending
	RoomID     *int64
	From       *time.Time
	To         *time.Time
	Limit      uint64
	Offset     uint64
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 int64      `json:"id"`
	RoomID             int64      `json:"roomId"`
	ApplicantUserID    int64      `json:"applicantUserId"`
	ParticipantUserIDs []int64    `json:"participantUserIds"`
	Purpose            string     `json:"purpose"`
	StartAt            time.Time  `json:"startAt"`
	EndAt              time.Time  `json:"endAt"`
	Status             string     `json:"status"`
	RejectReason       *string    `json:"rejectReason,omitempty"`
	ReviewedBy         *int64     `json:"reviewedBy,omitempty"`
	ReviewedAt         *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Конвертеры

// FromDomainReservation конвертирует бронирование в ответ.
// Без showReviewer личность ревьюера скрывается (так бронирование видит заявитель)
func FromDomainReservation(r *domain.Reservation, showReviewer bool) *ReservationResponse {
	participants := r.ParticipantUserIDs
	if participants == nil {
		participants = []int64{}
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		RoomID:             r.RoomID,
		ApplicantUserID:    r.ApplicantUserID,
		ParticipantUserIDs: participants,
		Purpose:            r.Purpose,
		StartAt:            r.StartAt,
		EndAt:              r.EndAt,
		Status:             string(r.Status),
		RejectReason:       r.RejectReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if showReviewer {
		resp.ReviewedBy = r.ReviewedBy
		resp.ReviewedAt = r.ReviewedAt
	}
	return resp
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(reservations []*domain.Reservation, showReviewer bool) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r, showReviewer))
	}
	return &ReservationListResponse{Reservations: result}
}
