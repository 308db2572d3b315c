package contract

import (
	"context"

	"rag-chat-storage/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	CrudRepository[entity.ChatMessage]
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
}
