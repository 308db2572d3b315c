package contract

import (
	"context"

	"rag-chat-storage/internal/repository/specification"

	"github.com/google/uuid"
)

// CrudRepository is the generic persistence contract shared by every entity.
// FindOne returns (nil, nil) when no row matches; classification of that into
// a not-found error happens in the service layer.
type CrudRepository[E any] interface {
	Create(ctx context.Context, e *E) error
	Save(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*E, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
