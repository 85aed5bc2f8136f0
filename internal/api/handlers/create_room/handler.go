package create_room

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
)

// Handler создание комнаты
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

// Handle POST /api/v1/buildings/{id}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /buildings/{id}/rooms - invalid id: %v", err)
		handlers.RespondBadRequest(w, "buildingId", "invalid id")
		return
	}

	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /buildings/{id}/rooms - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ActorID = userID
	req.BuildingID = id

	result, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "POST /buildings/{id}/rooms", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("POST /buildings/{id}/rooms - room id=%d created in building id=%d", result.ID, id)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
