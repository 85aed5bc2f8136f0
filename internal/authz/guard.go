package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityService/pkg/apperror"
)

var (
	// ErrForbidden возвращается, когда у пользователя нет требуемого права
	ErrForbidden = apperror.New(apperror.Forbidden, "", "permission denied")

	// ErrUnavailable возвращается, когда право не удалось проверить
	ErrUnavailable = apperror.New(apperror.Internal, "", "permission check unavailable")
)

// PermissionSource внешний источник прав (AccessService)
type PermissionSource interface {
	HasPermission(ctx context.Context, userID int64, code string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Guard проверяет права пользователя. Ролевая модель живёт во внешнем сервисе,
// здесь только ответ да/нет на конкретный код права
type Guard struct {
	source PermissionSource
	logger Logger
}

// NewGuard создает новый Guard
func NewGuard(source PermissionSource, logger Logger) *Guard {
	return &Guard{source: source, logger: logger}
}

// Has возвращает, выдано ли пользователю право code
func (g *Guard) Has(ctx context.Context, userID int64, code string) (bool, error) {
	allowed, err := g.source.HasPermission(ctx, userID, code)
	if err != nil {
		g.logger.Error("Has: failed to check permission=%s for user=%d: %v", code, userID, err)
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return allowed, nil
}

// Require возвращает ErrForbidden, если у пользователя нет права code
func (g *Guard) Require(ctx context.Context, userID int64, code string) error {
	allowed, err := g.Has(ctx, userID, code)
	if err != nil {
		return err
	}
	if !allowed {
		g.logger.Warn("Require: user=%d lacks permission=%s", userID, code)
		return ErrForbidden
	}
	return nil
}

// IsForbidden true, если ошибка означает отсутствие права
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
