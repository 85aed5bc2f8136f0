package get_floor_overview

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/usage/models"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

// Handler занятость комнат этажа
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

// Handle GET /api/v1/buildings/{id}/floors/{floorNo}/overview?from=&days=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /buildings/{id}/floors/{floorNo}/overview - invalid id: %v", err)
		handlers.RespondBadRequest(w, "buildingId", "invalid id")
		return
	}

	floorNo, err := handlers.PathInt(r, "floorNo")
	if err != nil {
		handlers.RespondBadRequest(w, "floorNo", "invalid floorNo")
		return
	}

	from, err := handlers.QueryTimePtr(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, "from", "invalid from, expected RFC3339")
		return
	}

	days, err := handlers.QueryInt(r, "days", 1)
	if err != nil {
		handlers.RespondBadRequest(w, "days", "invalid days")
		return
	}

	req := models.FloorOverviewRequest{
		BuildingID: id,
		FloorNo:    floorNo,
		From:       ptr.Deref(from, time.Time{}),
		Days:       days,
	}

	result, err := h.service.FloorOverview(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /buildings/{id}/floors/{floorNo}/overview", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /buildings/{id}/floors/{floorNo}/overview - overview building=%d floor=%d, %d rooms", id, floorNo, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
