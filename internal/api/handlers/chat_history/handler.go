package chat_history

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
)

const msgInvalidConversationID = "некорректный ID беседы"

type Handler struct {
	useCase ChatHistoryUseCase
	logger  Logger
}

func NewHandler(useCase ChatHistoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/chat/{conversationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conversationID, err := uuid.Parse(mux.Vars(r)["conversationId"])
	if err != nil {
		h.logger.Warn("GET /chat/{id} - Invalid conversation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConversationID)
		return
	}

	result, err := h.useCase.History(r.Context(), conversationID)
	if err != nil {
		h.logger.Error("GET /chat/{id} - Failed to load history: conversation=%s, error=%v", conversationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /chat/{id} - History retrieved: conversation=%s, count=%d", conversationID, len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
