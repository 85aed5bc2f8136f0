package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ApplicantUserID    int64     `json:"-"`
	RoomID             int64     `json:"roomId"`
	StartAt            time.Time `json:"startAt"`
	EndAt              time.Time `json:"endAt"`
	Purpose            string    `json:"purpose"`
	ParticipantUserIDs []int64   `json:"participantUserIds"`
}
