package unitofwork

import (
	"context"

	"rag-chat-storage/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Begin upgrades
// it to a transaction; without Begin, repositories run on the shared pool.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
