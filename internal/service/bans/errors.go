package bans

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrBanNotFound возвращается, когда бан не найден, уже отозван или истёк
	ErrBanNotFound = apperror.New(apperror.NotFound, "banId", "active ban not found")

	// ErrAlreadyBanned возвращается при повторном бане активно забаненного пользователя
	ErrAlreadyBanned = apperror.New(apperror.Conflict, "userId", "user is already banned")

	// ErrInvalidUserID возвращается при некорректном ID пользователя
	ErrInvalidUserID = apperror.New(apperror.BadRequest, "userId", "userId must be positive")

	// ErrInvalidReason возвращается при пустой или слишком длинной причине
	ErrInvalidReason = apperror.New(apperror.BadRequest, "reason", "reason must be 1..500 characters")

	// ErrAmbiguousExpiry возвращается, когда заданы и срок, и длительность
	ErrAmbiguousExpiry = apperror.New(apperror.BadRequest, "expiresAt", "specify either expiresAt or durationHours, not both")

	// ErrInvalidExpiry возвращается, когда срок бана не в будущем
	ErrInvalidExpiry = apperror.New(apperror.BadRequest, "expiresAt", "ban expiry must be in the future")

	// ErrInvalidDuration возвращается при неположительной или слишком большой длительности бана
	ErrInvalidDuration = apperror.New(apperror.BadRequest, "durationHours", "durationHours must be in (0, 87600]; omit both fields for an indefinite ban")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = apperror.New(apperror.Internal, "", "ban service: internal error")
)
