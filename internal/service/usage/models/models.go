package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Request модели

// FloorOverviewRequest запрос обзора этажа
type FloorOverviewRequest struct {
	BuildingID int64
	FloorNo    int
	From       time.Time // нулевое значение - начало текущих суток
	Days       int
}

// RoomTimelineRequest запрос занятости комнаты
type RoomTimelineRequest struct {
	RoomID int64
	From   time.Time // нулевое значение - начало текущих суток
	Days   int
}

// LeaderboardRequest запрос рейтинга
type LeaderboardRequest struct {
	Scope domain.LeaderboardScope
	Days  int
}

// Response модели

// WindowResponse окно [from, to)
type WindowResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SlotResponse занятый интервал. Цель и участники в обзоре не раскрываются
type SlotResponse struct {
	ReservationID   int64     `json:"reservationId"`
	ApplicantUserID int64     `json:"applicantUserId"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	Status          string    `json:"status"`
}

// RoomOccupancyResponse комната и её занятые интервалы
type RoomOccupancyResponse struct {
	RoomID   int64          `json:"roomId"`
	Name     string         `json:"name"`
	FloorNo  int            `json:"floorNo"`
	Capacity *int           `json:"capacity,omitempty"`
	Enabled  bool           `json:"enabled"`
	Slots    []SlotResponse `json:"slots"`
}

// FloorOverviewResponse обзор этажа
type FloorOverviewResponse struct {
	BuildingID int64                   `json:"buildingId"`
	FloorNo    int                     `json:"floorNo"`
	Window     WindowResponse          `json:"window"`
	Rooms      []RoomOccupancyResponse `json:"rooms"`
}

// RoomTimelineResponse занятость одной комнаты
type RoomTimelineResponse struct {
	Window WindowResponse        `json:"window"`
	Room   RoomOccupancyResponse `json:"room"`
}

// LeaderboardEntryResponse строка рейтинга
type LeaderboardEntryResponse struct {
	Rank         int     `json:"rank"`
	EntityID     int64   `json:"entityId"`
	Name         *string `json:"name,omitempty"`
	TotalSeconds int64   `json:"totalSeconds"`
}

// LeaderboardResponse рейтинг использования
type LeaderboardResponse struct {
	Scope   string                     `json:"scope"`
	Days    int                        `json:"days"`
	Window  WindowResponse             `json:"window"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// Конвертеры

// FromDomainWindow конвертирует интервал
func FromDomainWindow(w domain.Interval) WindowResponse {
	return WindowResponse{From: w.Start, To: w.End}
}

// FromDomainOccupancy конвертирует занятость комнаты
func FromDomainOccupancy(o domain.RoomOccupancy) RoomOccupancyResponse {
	slots := make([]SlotResponse, 0, len(o.Reservations))
	for _, r := range o.Reservations {
		slots = append(slots, SlotResponse{
			ReservationID:   r.ID,
			ApplicantUserID: r.ApplicantUserID,
			StartAt:         r.StartAt,
			EndAt:           r.EndAt,
			Status:          string(r.Status),
		})
	}
	return RoomOccupancyResponse{
		RoomID:   o.Room.ID,
		Name:     o.Room.Name,
		FloorNo:  o.Room.FloorNo,
		Capacity: o.Room.Capacity,
		Enabled:  o.Room.Enabled,
		Slots:    slots,
	}
}
