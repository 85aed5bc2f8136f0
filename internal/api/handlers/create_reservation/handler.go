package create_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-FacilityService/internal/usecase/create_reservation"
)

// Handler создания бронирования
type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

// NewHandler создает новый обработчик
func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	var req createReservation.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ApplicantUserID = userID

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "POST /reservations", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("POST /reservations - reservation id=%d created, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
