package implementation

import (
	"context"

	"rag-chat-storage/internal/entity"
	"rag-chat-storage/internal/mapper"
	"rag-chat-storage/internal/model"
	"rag-chat-storage/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	*CrudRepositoryImpl[entity.ChatMessage, model.ChatMessage]
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	m := mapper.NewChatMapper()
	return &ChatMessageRepositoryImpl{
		CrudRepositoryImpl: NewCrudRepository(db, m.ChatMessageToModel, m.ChatMessageToEntity),
		db:                 db,
	}
}

// DeleteBySessionId removes every message owned by a session. Called inside
// the session-delete transaction alongside the database-level cascade.
func (r *ChatMessageRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.ChatMessage{}).Error
}
