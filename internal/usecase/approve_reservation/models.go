package approve_reservation

// Request модель запроса на утверждение заявки
type Request struct {
	ReviewerID    int64
	ReservationID int64
}
