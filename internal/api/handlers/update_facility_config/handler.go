package update_facility_config

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/facility/models"
)

// Handler изменение конфигурации бронирования
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

// Handle PUT /api/v1/facility/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facility/config - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ActorID = userID

	result, err := h.service.SetConfig(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "PUT /facility/config", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("PUT /facility/config - config updated by user=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
