package reject_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

// Handler отклонение заявки
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

// Handle PATCH /api/v1/reservations/{id}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reject - invalid id: %v", err)
		handlers.RespondBadRequest(w, "reservationId", "invalid id")
		return
	}

	var req models.RejectReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reject - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ReviewerID = userID
	req.ReservationID = id

	result, err := h.service.Reject(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "PATCH /reservations/{id}/reject", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reject - reservation id=%d rejected by user=%d", id, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
