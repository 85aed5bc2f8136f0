package edit_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	editReservation "github.com/m04kA/SMC-FacilityService/internal/usecase/edit_reservation"
)

// Handler изменения заявки
type Handler struct {
	useCase EditReservationUseCase
	logger  Logger
}

// NewHandler создает новый обработчик
func NewHandler(useCase EditReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, "reservationId", "invalid id")
		return
	}

	var req editReservation.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ApplicantUserID = userID
	req.ReservationID = id

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "PUT /reservations/{id}", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("PUT /reservations/{id} - reservation id=%d edited", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
