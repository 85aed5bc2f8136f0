package edit_reservation

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrReservationNotFound возвращается, если бронирование не найдено или принадлежит другому пользователю
	ErrReservationNotFound = apperror.New(apperror.NotFound, "", "reservation not found")

	// ErrNotEditable возвращается, если бронирование уже не в статусе pending
	ErrNotEditable = apperror.New(apperror.Conflict, "status", "only pending reservations can be edited")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = apperror.New(apperror.Internal, "", "edit reservation: internal error")
)
