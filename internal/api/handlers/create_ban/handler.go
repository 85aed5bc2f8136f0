package create_ban

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/service/bans/models"
)

// Handler бан пользователя
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

// Handle POST /api/v1/bans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	var req models.CreateBanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bans - invalid request body: %v", err)
		handlers.RespondBadRequest(w, "", "invalid request body")
		return
	}
	req.ActorID = userID

	result, err := h.service.Ban(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "POST /bans", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("POST /bans - ban id=%d created for user=%d", result.ID, result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
