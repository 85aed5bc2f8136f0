package list_buildings

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler список зданий
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

// Handle GET /api/v1/buildings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	includeDisabled, err := handlers.QueryBool(r, "includeDisabled")
	if err != nil {
		handlers.RespondBadRequest(w, "includeDisabled", "invalid includeDisabled")
		return
	}

	result, err := h.service.ListBuildings(r.Context(), includeDisabled)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /buildings", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /buildings - buildings listed")
	handlers.RespondJSON(w, http.StatusOK, result)
}
