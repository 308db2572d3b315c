package unitofwork

import "context"

// RepositoryFactory hands out a fresh unit of work per operation; services
// never share transaction scopes.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
