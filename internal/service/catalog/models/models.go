package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Request модели

// CreateBuildingRequest запрос на создание здания
type CreateBuildingRequest struct {
	ActorID int64   `json:"-"`
	Name    string  `json:"name"`
	Enabled *bool   `json:"enabled,omitempty"` // по умолчанию true
	Sort    int     `json:"sort"`
	Remark  *string `json:"remark,omitempty"`
}

// UpdateBuildingRequest запрос на изменение здания
type UpdateBuildingRequest struct {
	ActorID int64   `json:"-"`
	ID      int64   `json:"-"`
	Name    string  `json:"name"`
	Sort    int     `json:"sort"`
	Remark  *string `json:"remark,omitempty"`
}

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	ActorID    int64   `json:"-"`
	BuildingID int64   `json:"-"`
	FloorNo    int     `json:"floorNo"`
	Name       string  `json:"name"`
	Capacity   *int    `json:"capacity,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"` // по умолчанию true
	Sort       int     `json:"sort"`
	Remark     *string `json:"remark,omitempty"`
}

// UpdateRoomRequest запрос на изменение комнаты
type UpdateRoomRequest struct {
	ActorID  int64   `json:"-"`
	ID       int64   `json:"-"`
	FloorNo  int     `json:"floorNo"`
	Name     string  `json:"name"`
	Capacity *int    `json:"capacity,omitempty"`
	Sort     int     `json:"sort"`
	Remark   *string `json:"remark,omitempty"`
}

// SetEnabledRequest запрос на включение/выключение здания или комнаты
type SetEnabledRequest struct {
	ActorID int64 `json:"-"`
	ID      int64 `json:"-"`
	Enabled bool  `json:"enabled"`
}

// Response модели

// BuildingResponse ответ с данными здания
type BuildingResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	Sort      int       `json:"sort"`
	Remark    *string   `json:"remark,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BuildingListResponse ответ со списком зданий
type BuildingListResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID         int64     `json:"id"`
	BuildingID int64     `json:"buildingId"`
	FloorNo    int       `json:"floorNo"`
	Name       string    `json:"name"`
	Capacity   *int      `json:"capacity,omitempty"`
	Enabled    bool      `json:"enabled"`
	Sort       int       `json:"sort"`
	Remark     *string   `json:"remark,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FloorsResponse этажи здания, на которых есть комнаты
type FloorsResponse struct {
	BuildingID int64 `json:"buildingId"`
	Floors     []int `json:"floors"`
}

// Методы конвертации

// FromDomainBuilding конвертирует domain модель в DTO
func FromDomainBuilding(b *domain.Building) *BuildingResponse {
	if b == nil {
		return nil
	}
	return &BuildingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Enabled:   b.Enabled,
		Sort:      b.Sort,
		Remark:    b.Remark,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBuildingList конвертирует список зданий в DTO
func FromDomainBuildingList(buildings []*domain.Building) *BuildingListResponse {
	resp := &BuildingListResponse{Buildings: make([]BuildingResponse, 0, len(buildings))}
	for _, b := range buildings {
		resp.Buildings = append(resp.Buildings, *FromDomainBuilding(b))
	}
	return resp
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:         r.ID,
		BuildingID: r.BuildingID,
		FloorNo:    r.FloorNo,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Enabled:    r.Enabled,
		Sort:       r.Sort,
		Remark:     r.Remark,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список комнат в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, *FromDomainRoom(r))
	}
	return resp
}
