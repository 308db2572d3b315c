package implementation

import (
	"rag-chat-storage/internal/entity"
	"rag-chat-storage/internal/mapper"
	"rag-chat-storage/internal/model"
	"rag-chat-storage/internal/repository/contract"

	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	*CrudRepositoryImpl[entity.ChatSession, model.ChatSession]
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	m := mapper.NewChatMapper()
	return &ChatSessionRepositoryImpl{
		CrudRepositoryImpl: NewCrudRepository(db, m.ChatSessionToModel, m.ChatSessionToEntity),
	}
}
