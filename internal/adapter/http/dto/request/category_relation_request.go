package request

import (
	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase"
)

type CategoryRelationRequest struct {
	SourceCategory []string `json:"source_category" binding:"required,min=1"`
	RelationType   string   `json:"relation_type" binding:"required"`
	TargetCategory string   `json:"target_category"`
	ProductID      string   `json:"product_id"`
}

func (r CategoryRelationRequest) ToCommand() usecase.CategoryRelationCommand {
	return usecase.CategoryRelationCommand{
		SourceCategories: r.SourceCategory,
		RelationType:     entities.RelationType(r.RelationType),
		TargetCategory:   r.TargetCategory,
		ProductID:        r.ProductID,
	}
}
