package interfaces

import (
	"context"
	"time"

	"product_estimator/internal/domain/entities"
)

// IEstimateRepository abstracts estimate persistence.
//
// Every write stores the rooms document and the flattened summary columns
// together. Lookups that find nothing return a zero Estimate (empty ID).

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Replace(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus, updatedAt time.Time) (entities.Estimate, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter entities.EstimateListFilter) ([]entities.Estimate, error)
}
