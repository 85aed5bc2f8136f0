package facility

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrEmptyPatch возвращается, когда в запросе нет ни одного изменяемого поля
	ErrEmptyPatch = apperror.New(apperror.BadRequest, "", "nothing to update")

	// ErrInvalidMaxDuration возвращается при недопустимом лимите длительности
	ErrInvalidMaxDuration = apperror.New(apperror.BadRequest, "maxDurationHours", "maxDurationHours must be in (0, 168]")

	// ErrInvalidReason возвращается при слишком длинной причине изменения
	ErrInvalidReason = apperror.New(apperror.BadRequest, "reason", "reason must be at most 500 characters")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = apperror.New(apperror.Internal, "", "facility service: internal error")
)
