package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// CachedCatalog is a read-through Redis cache in front of another catalog.
// Cache failures are logged and fall back to the origin. Missing products are
// not cached.
type CachedCatalog struct {
	origin interfaces.IProductCatalog
	rdb    *redis.Client
	ttl    time.Duration
}

var _ interfaces.IProductCatalog = (*CachedCatalog)(nil)

func NewCachedCatalog(origin interfaces.IProductCatalog, rdb *redis.Client, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{origin: origin, rdb: rdb, ttl: ttl}
}

func cacheKey(productID string) string {
	return fmt.Sprintf("catalog_product:%s", productID)
}

func (c *CachedCatalog) GetProduct(ctx context.Context, productID string) (entities.CatalogProduct, error) {
	key := cacheKey(productID)

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var product entities.CatalogProduct
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			return product, nil
		}
		log.Warn().Str("product_id", productID).Msg("[catalog][cache] corrupt entry; refetching")
	case errors.Is(err, redis.Nil):
	default:
		log.Warn().Err(err).Str("product_id", productID).Msg("[catalog][cache] get failed")
	}

	product, err := c.origin.GetProduct(ctx, productID)
	if err != nil || product.ID == "" {
		return product, err
	}

	data, err := json.Marshal(product)
	if err != nil {
		return product, nil
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("[catalog][cache] set failed")
	}
	return product, nil
}
