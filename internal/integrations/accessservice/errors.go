package accessservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда AccessService не знает пользователя
	ErrUserNotFound = errors.New("accessservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("accessservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("accessservice client: invalid response")
)
