package revoke_ban

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/bans/models"
)

// Handler отзыв бана
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

// Handle PATCH /api/v1/bans/{id}/revoke
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /bans/{id}/revoke - invalid id: %v", err)
		handlers.RespondBadRequest(w, "banId", "invalid id")
		return
	}

	var req models.RevokeBanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bans/{id}/revoke - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ActorID = userID
	req.BanID = id

	result, err := h.service.Revoke(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "PATCH /bans/{id}/revoke", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("PATCH /bans/{id}/revoke - ban id=%d revoked", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
