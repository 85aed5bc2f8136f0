package update_room

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
)

// Handler изменение комнаты
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

// Handle PUT /api/v1/rooms/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /rooms/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, "roomId", "invalid id")
		return
	}

	var req models.UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id} - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ActorID = userID
	req.ID = id

	result, err := h.service.UpdateRoom(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "PUT /rooms/{id}", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("PUT /rooms/{id} - room id=%d updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
