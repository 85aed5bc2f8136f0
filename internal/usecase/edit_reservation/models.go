package edit_reservation

import "time"

// Request модель запроса на изменение заявки.
// Комната не меняется; меняются время, цель и участники
type Request struct {
	ApplicantUserID    int64     `json:"-"`
	ReservationID      int64     `json:"-"`
	StartAt            time.Time `json:"startAt"`
	EndAt              time.Time `json:"endAt"`
	Purpose            string    `json:"purpose"`
	ParticipantUserIDs []int64   `json:"participantUserIds"`
}
