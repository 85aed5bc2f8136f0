package get_review_queue

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/reservations/models"
)

// Handler очередь заявок ревьюера
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

// Handle GET /api/v1/reservations/review?status=&roomId=&from=&to=&limit=&offset=
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

	roomID, err := handlers.QueryInt64Ptr(r, "roomId")
	if err != nil {
		handlers.RespondBadRequest(w, "roomId", "invalid roomId")
		return
	}

	from, err := handlers.QueryTimePtr(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, "from", "invalid from, expected RFC3339")
		return
	}

	to, err := handlers.QueryTimePtr(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, "to", "invalid to, expected RFC3339")
		return
	}

	req := models.ListForReviewRequest{
		ReviewerID: userID,
		Status:     status,
		RoomID:     roomID,
		From:       from,
		To:         to,
		Limit:      limit,
		Offset:     offset,
	}

	result, err := h.service.ListForReview(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /reservations/review", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /reservations/review - %d reservations in review queue", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
