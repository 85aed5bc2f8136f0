package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler комнаты здания
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

// Handle GET /api/v1/buildings/{id}/rooms?floorNo=&includeDisabled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /buildings/{id}/rooms - invalid id: %v", err)
		handlers.RespondBadRequest(w, "buildingId", "invalid id")
		return
	}

	var floorNo *int
	if raw := r.URL.Query().Get("floorNo"); raw != "" {
		floor, err := handlers.QueryInt(r, "floorNo", 0)
		if err != nil {
			handlers.RespondBadRequest(w, "floorNo", "invalid floorNo")
			return
		}
		floorNo = &floor
	}

	includeDisabled, err := handlers.QueryBool(r, "includeDisabled")
	if err != nil {
		handlers.RespondBadRequest(w, "includeDisabled", "invalid includeDisabled")
		return
	}

	result, err := h.service.ListRooms(r.Context(), id, floorNo, includeDisabled)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /buildings/{id}/rooms", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /buildings/{id}/rooms - %d rooms in building id=%d", len(result.Rooms), id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
