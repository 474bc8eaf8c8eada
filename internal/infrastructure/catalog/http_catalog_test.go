package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"product_estimator/internal/domain/entities"
	mock_interfaces "product_estimator/internal/usecase/interfaces/mocks"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/A":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"A","name":"Oak flooring","price":15,"min_price":10,"max_price":20,"category_ids":["flooring"],"pricing_method":"per_area"}`))
		case "/products/broken":
			_, _ = w.Write([]byte(`{"id":`))
		case "/products/down":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPCatalog_GetProduct(t *testing.T) {
	srv := newCatalogServer(t)
	c := NewHTTPCatalog(srv.URL, time.Second)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		p, err := c.GetProduct(ctx, "A")
		require.NoError(t, err)
		assert.Equal(t, entities.CatalogProduct{
			ID: "A", Name: "Oak flooring", Price: 15, MinPrice: 10, MaxPrice: 20,
			CategoryIDs: []string{"flooring"}, PricingMethod: entities.PricingMethodPerArea,
		}, p)
	})

	t.Run("not found is zero", func(t *testing.T) {
		p, err := c.GetProduct(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, p.ID)
	})

	t.Run("upstream error", func(t *testing.T) {
		_, err := c.GetProduct(ctx, "down")
		assert.Error(t, err)
	})

	t.Run("bad body", func(t *testing.T) {
		_, err := c.GetProduct(ctx, "broken")
		assert.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := NewHTTPCatalog("", time.Second).GetProduct(ctx, "A")
		assert.ErrorIs(t, err, ErrCatalogNotConfigured)
	})
}

func TestCachedCatalog_FallsBackWhenRedisIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	origin := mock_interfaces.NewMockIProductCatalog(ctrl)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	c := NewCachedCatalog(origin, rdb, time.Minute)

	origin.EXPECT().GetProduct(gomock.Any(), "A").Return(entities.CatalogProduct{ID: "A", Price: 5}, nil)
	p, err := c.GetProduct(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "A", p.ID)

	origin.EXPECT().GetProduct(gomock.Any(), "B").Return(entities.CatalogProduct{}, errors.New("timeout"))
	_, err = c.GetProduct(context.Background(), "B")
	assert.Error(t, err)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "catalog_product:A-1", cacheKey("A-1"))
}
