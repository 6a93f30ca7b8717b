package chat_reply

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// ChatRepository интерфейс хранилища сообщений
type ChatRepository interface {
	Save(ctx context.Context, msg *domain.ChatMessage) error
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit uint64) ([]*domain.ChatMessage, error)
}

// Assistant языковая модель: reply(prompt) -> text
type Assistant interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
