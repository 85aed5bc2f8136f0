package get_my_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

// Handler бронирования текущего пользователя
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

// Handle GET /api/v1/reservations/mine?status=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	var status *domain.ReservationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.ReservationStatus(raw)
		status = &s
	}

	limit, offset, err := handlers.QueryPage(r)
	if err != nil {
		handlers.RespondBadRequest(w, "limit", "invalid pagination")
		return
	}

	req := models.ListMineRequest{
		UserID: userID,
		Status: status,
		Limit:  limit,
		Offset: offset,
	}

	result, err := h.service.ListMine(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /reservations/mine", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /reservations/mine - %d reservations of user=%d", len(result.Reservations), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
