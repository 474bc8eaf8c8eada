package interfaces

import (
	"context"
	"product_estimator/internal/domain/entities"
)

// IEventPublisher emits estimate events to downstream consumers (mailers,
// CRM sync). Publishing is fire-and-forget for callers.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.EstimateEvent) error
}
