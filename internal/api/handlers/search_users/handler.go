package search_users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/service/users"
	"github.com/m04kA/SMC-CoachingService/internal/service/users/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "поиск пользователей доступен только коучу"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users
// Query params: search (опционально, username или email)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.service.Search(r.Context(), &models.SearchRequest{UserID: userID, Query: query})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrPermissionDenied):
			h.logger.Warn("GET /users - Permission denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /users - Failed to search users: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users - Users found: query=%q, count=%d", query, len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}
