package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrRelationNotFound  = errors.New("category relation not found")
	ErrInvalidRelationID = errors.New("invalid category relation id")
	ErrInvalidRelation   = errors.New("invalid category relation")
)

type CategoryRelationCommand struct {
	SourceCategories []string
	RelationType     entities.RelationType
	TargetCategory   string
	ProductID        string
}

// ICategoryRelationUseCase manages the rules AdditionResolver reads.

type ICategoryRelationUseCase interface {
	Create(ctx context.Context, cmd CategoryRelationCommand) (entities.CategoryRelation, error)
	GetByID(ctx context.Context, id string) (entities.CategoryRelation, error)
	List(ctx context.Context) ([]entities.CategoryRelation, error)
	Update(ctx context.Context, id string, cmd CategoryRelationCommand) (entities.CategoryRelation, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRelationUseCase struct {
	repo interfaces.ICategoryRelationRepository
	now  func() time.Time
}

var _ ICategoryRelationUseCase = (*CategoryRelationUseCase)(nil)

func NewCategoryRelationUseCase(repo interfaces.ICategoryRelationRepository) *CategoryRelationUseCase {
	return &CategoryRelationUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (u *CategoryRelationUseCase) Create(ctx context.Context, cmd CategoryRelationCommand) (entities.CategoryRelation, error) {
	r, err := buildRelation(cmd)
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	r.ID = uuid.NewString()
	r.CreatedAt = u.now()

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	log.Info().Str("relation_id", created.ID).Str("relation_type", string(created.RelationType)).
		Msg("[relation][usecase] created")
	return created, nil
}

func (u *CategoryRelationUseCase) GetByID(ctx context.Context, id string) (entities.CategoryRelation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CategoryRelation{}, ErrInvalidRelationID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	if r.ID == "" {
		return entities.CategoryRelation{}, ErrRelationNotFound
	}
	return r, nil
}

func (u *CategoryRelationUseCase) List(ctx context.Context) ([]entities.CategoryRelation, error) {
	return u.repo.List(ctx)
}

// Update replaces a rule in place. The original CreatedAt is kept so the rule
// keeps its registration order.
func (u *CategoryRelationUseCase) Update(ctx context.Context, id string, cmd CategoryRelationCommand) (entities.CategoryRelation, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CategoryRelation{}, err
	}

	r, err := buildRelation(cmd)
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	if updated.ID == "" {
		return entities.CategoryRelation{}, ErrRelationNotFound
	}
	return updated, nil
}

func (u *CategoryRelationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRelationID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrRelationNotFound
	}
	log.Info().Str("relation_id", id).Msg("[relation][usecase] deleted")
	return nil
}

func buildRelation(cmd CategoryRelationCommand) (entities.CategoryRelation, error) {
	sources := make([]string, 0, len(cmd.SourceCategories))
	seen := make(map[string]struct{}, len(cmd.SourceCategories))
	for _, c := range cmd.SourceCategories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		sources = append(sources, c)
	}
	if len(sources) == 0 || !cmd.RelationType.Valid() {
		return entities.CategoryRelation{}, ErrInvalidRelation
	}

	r := entities.CategoryRelation{
		SourceCategories: sources,
		RelationType:     cmd.RelationType,
		TargetCategory:   strings.TrimSpace(cmd.TargetCategory),
		ProductID:        strings.TrimSpace(cmd.ProductID),
	}
	switch r.RelationType {
	case entities.RelationTypeAutoAddByCategory:
		if r.ProductID == "" {
			return entities.CategoryRelation{}, ErrInvalidRelation
		}
	case entities.RelationTypeSuggestProductsByCategory:
		if r.TargetCategory == "" {
			return entities.CategoryRelation{}, ErrInvalidRelation
		}
	}
	return r, nil
}
