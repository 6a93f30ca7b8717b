package chat_history

import (
	"context"

	"github.com/google/uuid"

	chatReply "github.com/m04kA/SMC-CoachingService/internal/usecase/chat_reply"
)

type ChatHistoryUseCase interface {
	History(ctx context.Context, conversationID uuid.UUID) (*chatReply.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
