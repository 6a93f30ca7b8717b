package chat

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingService/pkg/psqlbuilder"
)

// Repository хранилище сообщений чат-бота
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет сообщение
func (r *Repository) Save(ctx context.Context, msg *domain.ChatMessage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("chat_messages").
		Columns("conversation_id", "sender", "message").
		Values(msg.ConversationID.String(), msg.Sender, msg.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: Save - execute insert: %w", ErrExecQuery, err)
	}
	msg.CreatedAt = createdAt.Time

	return nil
}

// ListByConversation возвращает последние limit сообщений беседы в хронологическом порядке
func (r *Repository) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit uint64) ([]*domain.ChatMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inner := psqlbuilder.Select("id", "conversation_id", "sender", "message", "created_at").
		From("chat_messages").
		Where(squirrel.Eq{"conversation_id": conversationID.String()}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit)

	query, args, err := psqlbuilder.Select("*").
		FromSelect(inner, "recent").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByConversation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByConversation - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ChatMessage, 0)
	for rows.Next() {
		var msg domain.ChatMessage
		var conversation string
		var createdAt sql.NullTime

		if err := rows.Scan(&msg.ID, &conversation, &msg.Sender, &msg.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByConversation - scan row: %w", ErrScanRow, err)
		}

		msg.ConversationID, err = uuid.Parse(conversation)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByConversation - parse conversation id: %w", ErrScanRow, err)
		}
		msg.CreatedAt = createdAt.Time

		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByConversation - rows error: %w", ErrScanRow, err)
	}

	return messages, nil
}
