package chat

import (
	"github.com/google/uuid"

	chatReply "github.com/m04kA/SMC-CoachingService/internal/usecase/chat_reply"
)

// ChatRequest HTTP request model
type ChatRequest struct {
	ConversationID string `json:"conversationId,omitempty"` // пусто для новой беседы
	Message        string `json:"message"`
}

// ChatResponse HTTP response model
type ChatResponse struct {
	ConversationID string `json:"conversationId"`
	Reply          string `json:"reply"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChatRequest) ToUseCaseRequest() (*chatReply.Request, error) {
	req := &chatReply.Request{Message: r.Message}
	if r.ConversationID == "" {
		return req, nil
	}

	id, err := uuid.Parse(r.ConversationID)
	if err != nil {
		return nil, err
	}
	req.ConversationID = id
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *chatReply.Response) *ChatResponse {
	return &ChatResponse{
		ConversationID: resp.ConversationID.String(),
		Reply:          resp.Reply,
	}
}
