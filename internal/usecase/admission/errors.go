package admission

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrInvalidInterval возвращается, когда endAt не позже startAt
	ErrInvalidInterval = apperror.New(apperror.BadRequest, "endAt", "endAt must be after startAt")

	// ErrStartInPast возвращается, когда бронирование начинается в прошлом
	ErrStartInPast = apperror.New(apperror.BadRequest, "startAt", "startAt must not be in the past")

	// ErrBeyondHorizon возвращается, когда бронирование заканчивается слишком далеко в будущем
	ErrBeyondHorizon = apperror.New(apperror.BadRequest, "endAt", "endAt is beyond the booking horizon")

	// ErrDurationExceedsCap возвращается, когда длительность больше maxDurationHours
	ErrDurationExceedsCap = apperror.New(apperror.BadRequest, "endAt", "duration exceeds cap")

	// ErrRoomUnavailable возвращается для неизвестной, удалённой или выключенной комнаты
	// или выключенного здания
	ErrRoomUnavailable = apperror.New(apperror.BadRequest, "roomId", "room unavailable")

	// ErrBanned возвращается, когда у заявителя есть активный бан
	ErrBanned = apperror.New(apperror.Forbidden, "", "banned")

	// ErrTimeConflict возвращается при пересечении с активным бронированием той же комнаты
	ErrTimeConflict = apperror.New(apperror.Conflict, "startAt", "time conflict")

	// ErrInvalidPurpose возвращается при пустой или слишком длинной цели
	ErrInvalidPurpose = apperror.New(apperror.BadRequest, "purpose", "purpose must be 1..500 characters")

	// ErrInvalidParticipants возвращается при некорректном списке участников
	ErrInvalidParticipants = apperror.New(apperror.BadRequest, "participantUserIds", "participants must be positive ids, at most 50")

	// ErrInternal возвращается при внутренних ошибках проверки
	ErrInternal = apperror.New(apperror.Internal, "", "admission: internal error")
)

// Результаты проверки для метрик
const (
	ResultAdmitted        = "admitted"
	ResultInvalidInterval = "invalid_interval"
	ResultDurationCap     = "duration_cap"
	ResultRoomUnavailable = "room_unavailable"
	ResultBanned          = "banned"
	ResultConflict        = "conflict"
)
