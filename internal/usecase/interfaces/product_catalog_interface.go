package interfaces

import (
	"context"
	"product_estimator/internal/domain/entities"
)

// IProductCatalog is the read-only e-commerce catalog. A product that does not
// exist is returned as a zero CatalogProduct.
type IProductCatalog interface {
	GetProduct(ctx context.Context, productID string) (entities.CatalogProduct, error)
}
