package chat_history

import (
	"time"

	chatReply "github.com/m04kA/SMC-CoachingService/internal/usecase/chat_reply"
)

// MessageResponse сообщение беседы
type MessageResponse struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryResponse HTTP response model
type HistoryResponse struct {
	ConversationID string            `json:"conversationId"`
	Messages       []MessageResponse `json:"messages"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *chatReply.HistoryResponse) *HistoryResponse {
	out := &HistoryResponse{
		ConversationID: resp.ConversationID.String(),
		Messages:       make([]MessageResponse, 0, len(resp.Messages)),
	}
	for _, m := range resp.Messages {
		out.Messages = append(out.Messages, MessageResponse{
			ID:        m.ID,
			Sender:    m.Sender,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
