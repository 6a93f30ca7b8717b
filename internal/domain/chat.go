package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage represents a single chatbot message
type ChatMessage struct {
	ID             int64
	ConversationID uuid.UUID
	Sender         string
	Message        string
	CreatedAt      time.Time
}
