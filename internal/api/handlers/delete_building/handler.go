package delete_building

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler удаление здания
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

// Handle DELETE /api/v1/buildings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /buildings/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, "buildingId", "invalid id")
		return
	}

	if err := h.service.DeleteBuilding(r.Context(), userID, id); err != nil {
		handlers.LogServiceError(h.logger, "DELETE /buildings/{id}", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("DELETE /buildings/{id} - building id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
