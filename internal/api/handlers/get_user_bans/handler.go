package get_user_bans

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler история банов пользователя
type Handler struct {
	service Service
	logger  Logger
}

// NewHandler создает новый обработчик
func NewHandler(service Service, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	targetID, err := handlers.PathID(r, "userId")
	if err != nil {
		h.logger.Warn("GET /users/{userId}/bans - invalid userId: %v", err)
		handlers.RespondBadRequest(w, "userId", "invalid userId")
		return
	}

	result, err := h.service.ListHistory(r.Context(), userID, targetID)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /users/{userId}/bans", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /users/{userId}/bans - %d bans of user=%d", len(result.Bans), targetID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
