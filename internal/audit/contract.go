package audit

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/integrations/auditservice"
)

// Sink получатель событий аудита
type Sink interface {
	Record(ctx context.Context, event auditservice.Event) error
}

// Logger интерфейс логгера
type Logger interface {
	Warn(format string, v ...interface{})
}
