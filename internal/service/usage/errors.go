package usage

import "github.com/m04kA/SMC-FacilityService/pkg/apperror"

var (
	// ErrBuildingNotFound здание не найдено
	ErrBuildingNotFound = apperror.New(apperror.NotFound, "buildingId", "building not found")

	// ErrRoomNotFound комната не найдена
	ErrRoomNotFound = apperror.New(apperror.NotFound, "roomId", "room not found")

	// ErrInvalidDays недопустимая длина окна обзора
	ErrInvalidDays = apperror.New(apperror.BadRequest, "days", "days is out of range")

	// ErrInvalidLeaderboardDays окно рейтинга не из разрешённого набора
	ErrInvalidLeaderboardDays = apperror.New(apperror.BadRequest, "days", "days is not an allowed leaderboard window")

	// ErrInvalidScope неизвестная группировка рейтинга
	ErrInvalidScope = apperror.New(apperror.BadRequest, "scope", "scope must be room or user")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = apperror.New(apperror.Internal, "", "usage: internal error")
)
