package create_building

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/catalog/models"
)

// Handler создание здания
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

// Handle POST /api/v1/buildings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	var req models.CreateBuildingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /buildings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ActorID = userID

	result, err := h.service.CreateBuilding(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "POST /buildings", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("POST /buildings - building id=%d created", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
