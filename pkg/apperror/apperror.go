package apperror

import (
	"errors"
	"net/http"
)

// Kind класс ошибки, который видит клиент
type Kind string

const (
	BadRequest   Kind = "BAD_REQUEST"
	Unauthorized Kind = "UNAUTHORIZED"
	Forbidden    Kind = "FORBIDDEN"
	NotFound     Kind = "NOT_FOUND"
	Conflict     Kind = "CONFLICT"
	Internal     Kind = "INTERNAL"
)

// Error доменная ошибка с классом и полем, к которому она относится.
// Значения объявляются как sentinel-переменные и сравниваются через errors.Is
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

// New создает новую доменную ошибку
func New(kind Kind, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf возвращает класс ошибки; для неизвестных ошибок Internal
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// As достаёт доменную ошибку из цепочки
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HTTPStatus HTTP статус для класса ошибки
func (k Kind) HTTPStatus() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
