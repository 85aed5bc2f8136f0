package delete_room

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler удаление комнаты
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

// Handle DELETE /api/v1/rooms/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, "roomId", "invalid id")
		return
	}

	if err := h.service.DeleteRoom(r.Context(), userID, id); err != nil {
		handlers.LogServiceError(h.logger, "DELETE /rooms/{id}", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("DELETE /rooms/{id} - room id=%d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
