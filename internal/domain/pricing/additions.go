package pricing

import (
	"context"
	"errors"
	"fmt"

	"product_estimator/internal/domain/entities"

	"github.com/rs/zerolog/log"
)

var ErrProductUnavailable = errors.New("product unavailable")

// Catalog looks products up in the external e-commerce catalog. A zero
// CatalogProduct (empty ID) means the product does not exist.
type Catalog interface {
	GetProduct(ctx context.Context, productID string) (entities.CatalogProduct, error)
}

// RelationSource returns every category relation in registration order.
type RelationSource interface {
	List(ctx context.Context) ([]entities.CategoryRelation, error)
}

// Selection is a product together with the companions auto-added for it.
type Selection struct {
	Primary   entities.PricedProduct
	Additions []entities.PricedProduct
}

// AdditionResolver decides which companion products category relations add
// to a selected product.
type AdditionResolver struct {
	catalog   Catalog
	relations RelationSource
}

func NewAdditionResolver(catalog Catalog, relations RelationSource) *AdditionResolver {
	return &AdditionResolver{catalog: catalog, relations: relations}
}

// Select looks up productID and resolves its companions. Only the primary
// product being unavailable is an error; broken rules are skipped.
func (r *AdditionResolver) Select(ctx context.Context, productID string) (Selection, error) {
	if r == nil || r.catalog == nil {
		return Selection{}, fmt.Errorf("%w: catalog not configured", ErrProductUnavailable)
	}

	product, err := r.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %v", ErrProductUnavailable, err)
	}
	if product.ID == "" {
		return Selection{}, ErrProductUnavailable
	}

	return Selection{
		Primary:   product.Priced(),
		Additions: r.companions(ctx, product),
	}, nil
}

func (r *AdditionResolver) companions(ctx context.Context, product entities.CatalogProduct) []entities.PricedProduct {
	if r.relations == nil || len(product.CategoryIDs) == 0 {
		return nil
	}

	rules, err := r.relations.List(ctx)
	if err != nil {
		log.Warn().Err(err).Str("product_id", product.ID).Msg("[pricing][additions] category relations unavailable; no companions added")
		return nil
	}

	// The primary product is never its own companion.
	seen := map[string]struct{}{product.ID: {}}
	var out []entities.PricedProduct
	for _, rule := range rules {
		if rule.RelationType != entities.RelationTypeAutoAddByCategory || rule.ProductID == "" {
			continue
		}
		if !rule.MatchesAny(product.CategoryIDs) {
			continue
		}
		if _, dup := seen[rule.ProductID]; dup {
			continue
		}
		seen[rule.ProductID] = struct{}{}

		target, err := r.catalog.GetProduct(ctx, rule.ProductID)
		if err != nil || target.ID == "" {
			log.Warn().Err(err).Str("relation_id", rule.ID).Str("target_product_id", rule.ProductID).
				Msg("[pricing][additions] relation target missing; skipped")
			continue
		}
		out = append(out, target.Priced())
	}
	return out
}

// ResolveAdditions prices productID and its companions for a room of the
// given area. The first entry is the primary product. An unavailable primary
// product yields an empty breakdown.
func (r *AdditionResolver) ResolveAdditions(ctx context.Context, productID string, roomArea float64) Breakdown {
	sel, err := r.Select(ctx, productID)
	if err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("[pricing][additions] primary product unavailable")
		return Breakdown{}
	}
	return BuildBreakdown(sel.Primary, sel.Additions, roomArea)
}
