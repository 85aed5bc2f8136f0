package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
)

const msgInternalError = "internal server error"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// RespondJSON пишет payload как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет доменную ошибку: класс определяет HTTP статус.
// Внутренние ошибки отдаются без подробностей
func RespondError(w http.ResponseWriter, err error) {
	appErr, ok := apperror.As(err)
	if !ok || appErr.Kind == apperror.Internal {
		RespondInternalError(w)
		return
	}
	RespondJSON(w, appErr.Kind.HTTPStatus(), ErrorResponse{
		Code:    string(appErr.Kind),
		Message: appErr.Message,
		Field:   appErr.Field,
	})
}

// RespondBadRequest 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, field, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Code: string(apperror.BadRequest), Message: message, Field: field})
}

// RespondUnauthorized 401 с сообщением
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Code: string(apperror.Unauthorized), Message: message})
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Code: string(apperror.Internal), Message: msgInternalError})
}

// DecodeJSON читает тело запроса; неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// PathID читает положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// PathInt читает int из переменной пути (может быть отрицательным)
func PathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// QueryInt читает необязательный int из query; def если параметр не задан
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// QueryInt64Ptr читает необязательный положительный int64 из query
func QueryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}

// QueryTimePtr читает необязательное время RFC3339 из query
func QueryTimePtr(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// QueryBool читает необязательный bool из query
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// QueryPage читает limit и offset
func QueryPage(r *http.Request) (uint64, uint64, error) {
	limit, err := QueryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		return 0, 0, errors.New("invalid limit")
	}
	offset, err := QueryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		return 0, 0, errors.New("invalid offset")
	}
	return uint64(limit), uint64(offset), nil
}

// ErrorLogger часть логгера, нужная для записи ошибок обработчиков
type ErrorLogger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// LogServiceError логирует ошибку сервиса: внутренние как Error, остальные как Warn
func LogServiceError(log ErrorLogger, route string, err error) {
	if apperror.KindOf(err) == apperror.Internal {
		log.Error("%s - %v", route, err)
		return
	}
	log.Warn("%s - %v", route, err)
}
