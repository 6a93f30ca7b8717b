package search_sessions

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions/models"
)

const msgMissingUserID = "отсутствует ID пользователя"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions
// Query params: search (опционально, тема или имя клиента)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("search"))

	// Клиент увидит только свои сессии, это решает сервис
	result, err := h.service.Search(r.Context(), &models.SearchRequest{UserID: userID, Query: query})
	if err != nil {
		h.logger.Error("GET /sessions - Failed to search sessions: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions - Sessions found: user_id=%d, query=%q, count=%d", userID, query, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
