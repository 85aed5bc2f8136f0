package approve_reservation

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrReservationNotFound возвращается, если бронирование не найдено
	ErrReservationNotFound = apperror.New(apperror.NotFound, "", "reservation not found")

	// ErrNotPending возвращается, если заявка уже рассмотрена или отменена
	ErrNotPending = apperror.New(apperror.Conflict, "status", "only pending reservations can be approved")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = apperror.New(apperror.Internal, "", "approve reservation: internal error")
)
