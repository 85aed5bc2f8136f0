package get_room

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler получение комнаты
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

// Handle GET /api/v1/rooms/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, "roomId", "invalid id")
		return
	}

	result, err := h.service.GetRoom(r.Context(), id)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /rooms/{id}", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /rooms/{id} - room id=%d retrieved", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
