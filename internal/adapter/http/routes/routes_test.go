package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"product_estimator/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) config.Config {
	return config.Config{
		Storage: config.StorageConfig{
			Driver:     config.StorageSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "estimator.db"),
		},
		Pricing: config.PricingConfig{DefaultMarkup: 10},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := buildApp(t.Context(), sqliteConfig(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return NewRouter(a.handlers)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestEstimateLifecycleOverSQLite(t *testing.T) {
	r := newTestRouter(t)

	draft := `{
		"name": "Kitchen refit",
		"customer": {"name": "Sam Doe", "email": "sam@example.com"},
		"rooms": [{
			"id": "room-1", "name": "Kitchen", "width": 4, "length": 5,
			"items": [{"type": "product", "product": {
				"id": "item-1", "product_id": "A", "name": "Oak flooring",
				"pricing_method": "per_area", "min_price": 10, "max_price": 20,
				"additional_products": [{"product_id": "B", "name": "Underlay", "pricing_method": "fixed", "min_price": 15, "max_price": 15}]
			}}]
		}]
	}`

	w := do(r, http.MethodPost, "/v1/estimates", draft)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"total_min":215`)
	assert.Contains(t, w.Body.String(), `"total_max":415`)

	w = do(r, http.MethodGet, "/v1/estimates?search=doe", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Kitchen refit"`)

	w = do(r, http.MethodGet, "/v1/estimates/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "id,name,"))

	w = do(r, http.MethodGet, "/v1/estimates/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/v1/category-relations", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
