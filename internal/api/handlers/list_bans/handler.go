package list_bans

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler список активных банов
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

// Handle GET /api/v1/bans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	result, err := h.service.ListActive(r.Context(), userID)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /bans", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /bans - %d active bans", len(result.Bans))
	handlers.RespondJSON(w, http.StatusOK, result)
}
