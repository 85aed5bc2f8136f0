package admission

import "github.com/m04kA/SMC-FacilityService/internal/domain"

// Candidate заявка на бронирование, которую нужно проверить
type Candidate struct {
	RoomID          int64
	ApplicantUserID int64
	Interval        domain.Interval
	// ExcludeReservationID не учитывается при поиске пересечений (проверка правки самой себя)
	ExcludeReservationID *int64
}
