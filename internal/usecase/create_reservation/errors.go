package create_reservation

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrInvalidRoomID возвращается, если roomId не указан
	ErrInvalidRoomID = apperror.New(apperror.BadRequest, "roomId", "roomId is required")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = apperror.New(apperror.Internal, "", "create reservation: internal error")
)
