package list_floors

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler этажи здания
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

// Handle GET /api/v1/buildings/{id}/floors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /buildings/{id}/floors - invalid id: %v", err)
		handlers.RespondBadRequest(w, "buildingId", "invalid id")
		return
	}

	result, err := h.service.ListFloors(r.Context(), id)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /buildings/{id}/floors", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /buildings/{id}/floors - %d floors in building id=%d", len(result.Floors), id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
