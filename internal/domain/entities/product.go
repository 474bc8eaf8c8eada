package entities

// PricingMethod selects how a unit price becomes a total.
type PricingMethod string

const (
	PricingMethodFixed   PricingMethod = "fixed"
	PricingMethodPerArea PricingMethod = "per_area"
)

func (m PricingMethod) Valid() bool {
	return m == PricingMethodFixed || m == PricingMethodPerArea
}

// PricedProduct is one priced line: unit prices for per_area products,
// absolute prices for fixed ones.
type PricedProduct struct {
	ProductID     string        `json:"product_id"`
	Name          string        `json:"name"`
	PricingMethod PricingMethod `json:"pricing_method,omitempty"`
	MinPrice      float64       `json:"min_price"`
	MaxPrice      float64       `json:"max_price"`
}

// CatalogProduct is what the external e-commerce catalog returns for a product.
//
// Price is the regular price. MinPrice/MaxPrice carry an explicit price range
// when the catalog has one; otherwise Price is used for both bounds.
type CatalogProduct struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Price         float64       `json:"price"`
	MinPrice      float64       `json:"min_price,omitempty"`
	MaxPrice      float64       `json:"max_price,omitempty"`
	CategoryIDs   []string      `json:"category_ids"`
	PricingMethod PricingMethod `json:"pricing_method"`
}

func (p CatalogProduct) Priced() PricedProduct {
	minPrice, maxPrice := p.MinPrice, p.MaxPrice
	if minPrice == 0 && maxPrice == 0 {
		minPrice, maxPrice = p.Price, p.Price
	}
	return PricedProduct{
		ProductID:     p.ID,
		Name:          p.Name,
		PricingMethod: p.PricingMethod,
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
	}
}
