package create_room

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
)

// Service сервис каталога
type Service interface {
	CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
