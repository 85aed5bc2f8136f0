package get_room_timeline

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/usage/models"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

// Handler занятость комнаты
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

// Handle GET /api/v1/rooms/{id}/timeline?from=&days=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/timeline - invalid id: %v", err)
		handlers.RespondBadRequest(w, "roomId", "invalid id")
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

	req := models.RoomTimelineRequest{
		RoomID: id,
		From:   ptr.Deref(from, time.Time{}),
		Days:   days,
	}

	result, err := h.service.RoomTimeline(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /rooms/{id}/timeline", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /rooms/{id}/timeline - timeline room=%d, %d slots", id, len(result.Room.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
