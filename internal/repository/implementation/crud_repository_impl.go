package implementation

import (
	"context"
	"errors"

	"rag-chat-storage/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrudRepositoryImpl implements contract.CrudRepository for any entity E
// persisted as model M. The mapping functions keep GORM types out of the
// domain entities.
type CrudRepositoryImpl[E any, M any] struct {
	db       *gorm.DB
	toModel  func(*E) *M
	toEntity func(*M) *E
}

func NewCrudRepository[E any, M any](db *gorm.DB, toModel func(*E) *M, toEntity func(*M) *E) *CrudRepositoryImpl[E, M] {
	return &CrudRepositoryImpl[E, M]{
		db:       db,
		toModel:  toModel,
		toEntity: toEntity,
	}
}

func (r *CrudRepositoryImpl[E, M]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CrudRepositoryImpl[E, M]) Create(ctx context.Context, e *E) error {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	// Refresh the entity with store-assigned fields (id, timestamps).
	*e = *r.toEntity(m)
	return nil
}

func (r *CrudRepositoryImpl[E, M]) Save(ctx context.Context, e *E) error {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*e = *r.toEntity(m)
	return nil
}

func (r *CrudRepositoryImpl[E, M]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(new(M), "id = ?", id).Error
}

func (r *CrudRepositoryImpl[E, M]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *CrudRepositoryImpl[E, M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*E, len(models))
	for i, m := range models {
		entities[i] = r.toEntity(m)
	}
	return entities, nil
}

func (r *CrudRepositoryImpl[E, M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
