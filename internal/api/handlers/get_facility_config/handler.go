package get_facility_config

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler чтение конфигурации бронирования
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

// Handle GET /api/v1/facility/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	result, err := h.service.GetConfig(r.Context())
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /facility/config", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /facility/config - config retrieved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
