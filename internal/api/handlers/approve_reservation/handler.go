package approve_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	approveReservation "github.com/m04kA/SMC-FacilityService/internal/usecase/approve_reservation"
)

// Handler утверждения заявки
type Handler struct {
	useCase ApproveReservationUseCase
	logger  Logger
}

// NewHandler создает новый обработчик
func NewHandler(useCase ApproveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{id}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/approve - invalid id: %v", err)
		handlers.RespondBadRequest(w, "reservationId", "invalid id")
		return
	}

	req := approveReservation.Request{
		ReviewerID:    userID,
		ReservationID: id,
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "PATCH /reservations/{id}/approve", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("PATCH /reservations/{id}/approve - reservation id=%d approved by user=%d", id, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
