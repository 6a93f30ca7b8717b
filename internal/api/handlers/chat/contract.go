package chat

import (
	"context"

	chatReply "github.com/m04kA/SMC-CoachingService/internal/usecase/chat_reply"
)

type ChatReplyUseCase interface {
	Execute(ctx context.Context, req *chatReply.Request) (*chatReply.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
