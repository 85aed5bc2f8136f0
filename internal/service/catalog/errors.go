package catalog

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrBuildingNotFound возвращается, когда здание не найдено
	ErrBuildingNotFound = apperror.New(apperror.NotFound, "buildingId", "building not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = apperror.New(apperror.NotFound, "roomId", "room not found")

	// ErrDuplicateBuildingName возвращается, когда здание с таким именем уже есть
	ErrDuplicateBuildingName = apperror.New(apperror.Conflict, "name", "building name already exists")

	// ErrDuplicateRoomName возвращается, когда в здании уже есть комната с таким именем
	ErrDuplicateRoomName = apperror.New(apperror.Conflict, "name", "room name already exists in building")

	// ErrBuildingHasRooms возвращается при удалении здания, в котором есть комнаты
	ErrBuildingHasRooms = apperror.New(apperror.Conflict, "buildingId", "building has rooms")

	// ErrRoomHasReservations возвращается при удалении комнаты с активными бронированиями
	ErrRoomHasReservations = apperror.New(apperror.Conflict, "roomId", "room has active reservations")

	// ErrInvalidName возвращается при пустом или слишком длинном имени
	ErrInvalidName = apperror.New(apperror.BadRequest, "name", "name must be 1..100 characters")

	// ErrInvalidRemark возвращается при слишком длинном примечании
	ErrInvalidRemark = apperror.New(apperror.BadRequest, "remark", "remark must be at most 500 characters")

	// ErrInvalidCapacity возвращается при неположительной вместимости
	ErrInvalidCapacity = apperror.New(apperror.BadRequest, "capacity", "capacity must be positive")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = apperror.New(apperror.Internal, "", "catalog service: internal error")
)
