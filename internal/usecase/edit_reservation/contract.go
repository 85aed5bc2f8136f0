package edit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/usecase/admission"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateDetails(ctx context.Context, reservation *domain.Reservation) error
}

// AdmissionChecker проверка допуска под блокировкой комнаты
type AdmissionChecker interface {
	WithRoomLock(ctx context.Context, roomID int64, fn func(ctx context.Context) error) error
	Check(ctx context.Context, cfg domain.FacilityConfig, cand admission.Candidate) error
	Now() time.Time
}

// ConfigProvider источник действующей конфигурации бронирования
type ConfigProvider interface {
	Current(ctx context.Context) (domain.FacilityConfig, error)
}

// AuditRecorder запись событий аудита
type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry)
}

// MetricsObserver учёт переходов статусов
type MetricsObserver interface {
	ObserveTransition(action string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
