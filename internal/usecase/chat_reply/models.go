package chat_reply

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Request сообщение пользователя; пустой ConversationID начинает новую беседу
type Request struct {
	ConversationID uuid.UUID
	Message        string
}

// Response ответ бота
type Response struct {
	ConversationID uuid.UUID
	Reply          string
}

// HistoryResponse сообщения беседы в хронологическом порядке
type HistoryResponse struct {
	ConversationID uuid.UUID
	Messages       []*domain.ChatMessage
}
