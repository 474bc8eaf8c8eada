package interfaces

import (
	"context"
	"product_estimator/internal/domain/entities"
)

// ICategoryRelationRepository abstracts the category relation rules store.
// List returns rules in registration order.

type ICategoryRelationRepository interface {
	Create(ctx context.Context, r entities.CategoryRelation) (entities.CategoryRelation, error)
	GetByID(ctx context.Context, id string) (entities.CategoryRelation, error)
	List(ctx context.Context) ([]entities.CategoryRelation, error)
	Update(ctx context.Context, r entities.CategoryRelation) (entities.CategoryRelation, error)
	Delete(ctx context.Context, id string) (bool, error)
}
