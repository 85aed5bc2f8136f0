package set_building_enabled

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
)

// Handler включение и выключение здания
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

// Handle PATCH /api/v1/buildings/{id}/enabled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /buildings/{id}/enabled - invalid id: %v", err)
		handlers.RespondBadRequest(w, "buildingId", "invalid id")
		return
	}

	var req models.SetEnabledRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /buildings/{id}/enabled - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ActorID = userID
	req.ID = id

	result, err := h.service.SetBuildingEnabled(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "PATCH /buildings/{id}/enabled", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("PATCH /buildings/{id}/enabled - building id=%d enabled=%t", id, result.Enabled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
