package chat

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	chatReply "github.com/m04kA/SMC-CoachingService/internal/usecase/chat_reply"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidConversationID = "некорректный ID беседы"
	msgInvalidMessage        = "сообщение не может быть пустым или слишком длинным"
)

type Handler struct {
	useCase ChatReplyUseCase
	logger  Logger
}

func NewHandler(useCase ChatReplyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /chat - Invalid conversation ID %q: %v", req.ConversationID, err)
		handlers.RespondBadRequest(w, msgInvalidConversationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, chatReply.ErrInvalidInput):
			h.logger.Warn("POST /chat - Invalid message: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /chat - Failed to reply: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chat - Replied in conversation %s", result.ConversationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
