package get_leaderboard

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/usage/models"
)

// Handler рейтинг использования
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

// Handle GET /api/v1/leaderboard?scope=room|user&days=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing user id")
		return
	}

	days, err := handlers.QueryInt(r, "days", 7)
	if err != nil {
		handlers.RespondBadRequest(w, "days", "invalid days")
		return
	}

	req := models.LeaderboardRequest{
		Scope: domain.LeaderboardScope(r.URL.Query().Get("scope")),
		Days:  days,
	}

	result, err := h.service.Leaderboard(r.Context(), &req)
	if err != nil {
		handlers.LogServiceError(h.logger, "GET /leaderboard", err)
		handlers.RespondError(w, err)
		return
	}

	h.logger.Info("GET /leaderboard - leaderboard scope=%s days=%d, %d entries", req.Scope, days, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
