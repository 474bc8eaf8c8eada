package entities

import "time"

type RelationType string

const (
	RelationTypeAutoAddByCategory         RelationType = "auto_add_by_category"
	RelationTypeSuggestProductsByCategory RelationType = "suggest_products_by_category"
)

func (t RelationType) Valid() bool {
	return t == RelationTypeAutoAddByCategory || t == RelationTypeSuggestProductsByCategory
}

// CategoryRelation is a plugin-wide rule keyed by source categories.
//
// auto_add_by_category rules point at ProductID; suggestion rules point at
// TargetCategory. Registration order (CreatedAt, then ID) is the tie-break
// order used when resolving companions.
type CategoryRelation struct {
	ID               string       `json:"id"`
	SourceCategories []string     `json:"source_category"`
	RelationType     RelationType `json:"relation_type"`
	TargetCategory   string       `json:"target_category,omitempty"`
	ProductID        string       `json:"product_id,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// MatchesAny reports whether any of categoryIDs is a source category.
func (r CategoryRelation) MatchesAny(categoryIDs []string) bool {
	for _, src := range r.SourceCategories {
		for _, c := range categoryIDs {
			if src == c {
				return true
			}
		}
	}
	return false
}
