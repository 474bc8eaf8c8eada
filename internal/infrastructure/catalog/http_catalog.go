package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase/interfaces"
)

var ErrCatalogNotConfigured = errors.New("product catalog not configured")

// HTTPCatalog reads products from the e-commerce catalog API:
//
//	GET {baseURL}/products/{id}
//
// 404 means the product does not exist and yields a zero CatalogProduct.
type HTTPCatalog struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IProductCatalog = (*HTTPCatalog)(nil)

func NewHTTPCatalog(baseURL string, timeout time.Duration) *HTTPCatalog {
	return &HTTPCatalog{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPCatalog) GetProduct(ctx context.Context, productID string) (entities.CatalogProduct, error) {
	if c.baseURL == "" {
		return entities.CatalogProduct{}, ErrCatalogNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(productID)), nil)
	if err != nil {
		return entities.CatalogProduct{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entities.CatalogProduct{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entities.CatalogProduct{}, nil
	default:
		return entities.CatalogProduct{}, fmt.Errorf("catalog returned status %d for product %s", resp.StatusCode, productID)
	}

	var product entities.CatalogProduct
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return entities.CatalogProduct{}, fmt.Errorf("decode catalog product %s: %w", productID, err)
	}
	if product.ID == "" {
		product.ID = productID
	}
	return product, nil
}
