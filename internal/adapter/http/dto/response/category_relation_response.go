package response

import (
	"time"

	"product_estimator/internal/domain/entities"
)

type CategoryRelationResponse struct {
	ID             string    `json:"id"`
	SourceCategory []string  `json:"source_category"`
	RelationType   string    `json:"relation_type"`
	TargetCategory string    `json:"target_category,omitempty"`
	ProductID      string    `json:"product_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromCategoryRelation(r entities.CategoryRelation) CategoryRelationResponse {
	return CategoryRelationResponse{
		ID:             r.ID,
		SourceCategory: r.SourceCategories,
		RelationType:   string(r.RelationType),
		TargetCategory: r.TargetCategory,
		ProductID:      r.ProductID,
		CreatedAt:      r.CreatedAt,
	}
}

func FromCategoryRelations(rules []entities.CategoryRelation) []CategoryRelationResponse {
	out := make([]CategoryRelationResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromCategoryRelation(r))
	}
	return out
}
