package contract

import "rag-chat-storage/internal/entity"

type ChatSessionRepository interface {
	CrudRepository[entity.ChatSession]
}
