// Package pricing turns stored unit prices into product, room and estimate
// totals. Nothing here fails: missing references are skipped and logged so an
// estimate can always be rendered.
package pricing

import (
	"product_estimator/internal/domain/entities"

	"github.com/rs/zerolog/log"
)

// ProductPrice is the priced outcome of one product in a room.
type ProductPrice struct {
	ProductID     string
	Name          string
	PricingMethod entities.PricingMethod
	MinTotal      float64
	MaxTotal      float64
	AutoAdded     bool
}

func (p ProductPrice) Totals() Totals {
	return Totals{MinTotal: p.MinTotal, MaxTotal: p.MaxTotal}
}

// ComputeProductPrice prices p for a room of the given area.
//
// Fixed products ignore the area. Per-area products scale by it, and a
// non-positive area (room not dimensioned yet) yields zero totals.
func ComputeProductPrice(p entities.PricedProduct, roomArea float64) ProductPrice {
	method := resolveMethod(p)

	minPrice, maxPrice := p.MinPrice, p.MaxPrice
	if !isFinite(minPrice) || !isFinite(maxPrice) || !isFinite(roomArea) {
		log.Warn().Str("product_id", p.ProductID).Float64("room_area", roomArea).
			Msg("[pricing][aggregator] non-finite price or area; pricing at zero")
		return ProductPrice{ProductID: p.ProductID, Name: p.Name, PricingMethod: method}
	}
	if minPrice > maxPrice {
		log.Warn().Str("product_id", p.ProductID).Float64("min_price", minPrice).Float64("max_price", maxPrice).
			Msg("[pricing][aggregator] min price above max price; swapping bounds")
		minPrice, maxPrice = maxPrice, minPrice
	}

	out := ProductPrice{
		ProductID:     p.ProductID,
		Name:          p.Name,
		PricingMethod: method,
	}

	switch method {
	case entities.PricingMethodPerArea:
		if roomArea <= 0 {
			return out
		}
		out.MinTotal = minPrice * roomArea
		out.MaxTotal = maxPrice * roomArea
		if !isFinite(out.MinTotal) || !isFinite(out.MaxTotal) {
			log.Warn().Str("product_id", p.ProductID).Float64("room_area", roomArea).
				Msg("[pricing][aggregator] per-area total overflows; pricing at zero")
			out.MinTotal, out.MaxTotal = 0, 0
		}
	default:
		out.MinTotal = minPrice
		out.MaxTotal = maxPrice
	}
	return out
}

// resolveMethod falls back to fixed for legacy entries without a method and
// for unknown values.
func resolveMethod(p entities.PricedProduct) entities.PricingMethod {
	if p.PricingMethod == "" {
		return entities.PricingMethodFixed
	}
	if !p.PricingMethod.Valid() {
		log.Warn().Str("product_id", p.ProductID).Str("pricing_method", string(p.PricingMethod)).
			Msg("[pricing][aggregator] unknown pricing method; using fixed")
		return entities.PricingMethodFixed
	}
	return p.PricingMethod
}
