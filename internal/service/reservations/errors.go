package reservations

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrReservationNotFound бронирование не найдено или не видно пользователю
	ErrReservationNotFound = apperror.New(apperror.NotFound, "", "reservation not found")

	// ErrNotPending переход допустим только из статуса pending
	ErrNotPending = apperror.New(apperror.Conflict, "status", "only pending reservations can be rejected")

	// ErrNotCancellable бронирование уже не активно или уже началось
	ErrNotCancellable = apperror.New(apperror.Conflict, "status", "reservation can only be cancelled while active and before it starts")

	// ErrInvalidRejectReason причина отклонения пустая или слишком длинная
	ErrInvalidRejectReason = apperror.New(apperror.BadRequest, "reason", "reject reason must be 1..500 characters")

	// ErrInvalidReason причина отмены слишком длинная
	ErrInvalidReason = apperror.New(apperror.BadRequest, "reason", "reason must be at most 500 characters")

	// ErrInvalidStatus неизвестный статус в фильтре
	ErrInvalidStatus = apperror.New(apperror.BadRequest, "status", "unknown reservation status")

	// ErrInvalidWindow некорректный интервал фильтра
	ErrInvalidWindow = apperror.New(apperror.BadRequest, "from", "from and to must be given together and to must be after from")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = apperror.New(apperror.Internal, "", "reservations: internal error")
)
