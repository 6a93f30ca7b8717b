package chat_reply

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

const (
	thanksKeyword = "merci"
	thanksReply   = "For more information, create an account and schedule an appointment. We look forward to hearing from you! See you soon!"
	fallbackReply = "Sorry, the assistant is unavailable right now. Please try again later."
	historyLimit  = 50
)

// UseCase use case ответа чат-бота
type UseCase struct {
	chatRepo  ChatRepository
	assistant Assistant
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(chatRepo ChatRepository, assistant Assistant, logger Logger) *UseCase {
	return &UseCase{
		chatRepo:  chatRepo,
		assistant: assistant,
		logger:    logger,
	}
}

// Execute сохраняет сообщение пользователя, получает ответ и сохраняет его
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(message) > domain.MaxChatMessage {
		return nil, fmt.Errorf("%w: message is longer than %d characters", ErrInvalidInput, domain.MaxChatMessage)
	}

	conversationID := req.ConversationID
	if conversationID == uuid.Nil {
		conversationID = uuid.New()
		uc.logger.Info("ChatReply: new conversation %s", conversationID)
	}

	if err := uc.save(ctx, conversationID, domain.SenderUser, message); err != nil {
		return nil, err
	}

	reply := uc.reply(ctx, conversationID, message)

	if err := uc.save(ctx, conversationID, domain.SenderBot, reply); err != nil {
		return nil, err
	}

	return &Response{ConversationID: conversationID, Reply: reply}, nil
}

// History возвращает последние сообщения беседы
func (uc *UseCase) History(ctx context.Context, conversationID uuid.UUID) (*HistoryResponse, error) {
	messages, err := uc.chatRepo.ListByConversation(ctx, conversationID, historyLimit)
	if err != nil {
		uc.logger.Error("ChatReply: failed to load conversation %s: %v", conversationID, err)
		return nil, fmt.Errorf("%w: failed to load history: %v", ErrInternal, err)
	}
	return &HistoryResponse{ConversationID: conversationID, Messages: messages}, nil
}

func (uc *UseCase) reply(ctx context.Context, conversationID uuid.UUID, message string) string {
	if strings.EqualFold(message, thanksKeyword) {
		return thanksReply
	}

	answer, err := uc.assistant.Reply(ctx, buildPrompt(message))
	if err != nil || answer == "" {
		// Недоступность модели не ломает чат: пользователь получает запасной ответ
		uc.logger.Error("ChatReply: assistant failed for conversation %s: %v", conversationID, err)
		return fallbackReply
	}
	return answer
}

func (uc *UseCase) save(ctx context.Context, conversationID uuid.UUID, sender, text string) error {
	msg := &domain.ChatMessage{
		ConversationID: conversationID,
		Sender:         sender,
		Message:        text,
	}
	if err := uc.chatRepo.Save(ctx, msg); err != nil {
		uc.logger.Error("ChatReply: failed to save %s message for conversation %s: %v", sender, conversationID, err)
		return fmt.Errorf("%w: failed to save message: %v", ErrInternal, err)
	}
	return nil
}

func buildPrompt(message string) string {
	return "User: " + message + "\nAssistant:"
}
