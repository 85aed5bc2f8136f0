package get_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
)

// Handler карточка бронирования
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

// Handle GET /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, "reservationId", "invalid id")
		return
	}

	result, err := h.service.GetDetail(r.Context(), userID, id)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /reservations/{id}", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /reservations/{id} - reservation id=%d retrieved by user=%d", id, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
