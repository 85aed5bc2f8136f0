package delete_room

import (
	"context"
)

// Service сервис каталога
type Service interface {
	DeleteRoom(ctx context.Context, actorID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
