package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"product_estimator/internal/domain/entities"
	mock_interfaces "product_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newRelationUseCase(t *testing.T) (*CategoryRelationUseCase, *mock_interfaces.MockICategoryRelationRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICategoryRelationRepository(ctrl)
	uc := NewCategoryRelationUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func TestCategoryRelationUseCase_Create(t *testing.T) {
	invalid := map[string]CategoryRelationCommand{
		"no sources":          {RelationType: entities.RelationTypeAutoAddByCategory, ProductID: "B"},
		"blank sources":       {SourceCategories: []string{" ", ""}, RelationType: entities.RelationTypeAutoAddByCategory, ProductID: "B"},
		"unknown type":        {SourceCategories: []string{"flooring"}, RelationType: "bundle", ProductID: "B"},
		"auto add no product": {SourceCategories: []string{"flooring"}, RelationType: entities.RelationTypeAutoAddByCategory},
		"suggest no target":   {SourceCategories: []string{"flooring"}, RelationType: entities.RelationTypeSuggestProductsByCategory},
	}
	for name, cmd := range invalid {
		t.Run(name, func(t *testing.T) {
			uc, _ := newRelationUseCase(t)
			if _, err := uc.Create(context.Background(), cmd); !errors.Is(err, ErrInvalidRelation) {
				t.Fatalf("expected ErrInvalidRelation, got %v", err)
			}
		})
	}

	t.Run("repo error", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CategoryRelation{}, errors.New("db"))

		_, err := uc.Create(context.Background(), CategoryRelationCommand{
			SourceCategories: []string{"flooring"},
			RelationType:     entities.RelationTypeAutoAddByCategory,
			ProductID:        "B",
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CategoryRelation{})).DoAndReturn(
			func(_ context.Context, r entities.CategoryRelation) (entities.CategoryRelation, error) {
				if r.ID == "" || !r.CreatedAt.Equal(fixedNow) {
					t.Fatalf("expected id and created_at, got %+v", r)
				}
				if len(r.SourceCategories) != 2 || r.SourceCategories[0] != "flooring" || r.SourceCategories[1] != "tiling" {
					t.Fatalf("unexpected sources: %v", r.SourceCategories)
				}
				if r.ProductID != "B" {
					t.Fatalf("unexpected product id %q", r.ProductID)
				}
				return r, nil
			},
		)

		res, err := uc.Create(context.Background(), CategoryRelationCommand{
			SourceCategories: []string{" flooring", "tiling", "flooring", ""},
			RelationType:     entities.RelationTypeAutoAddByCategory,
			ProductID:        " B ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCategoryRelationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newRelationUseCase(t)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidRelationID) {
			t.Fatalf("expected ErrInvalidRelationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "rel-1").Return(entities.CategoryRelation{}, nil)
		if _, err := uc.GetByID(context.Background(), "rel-1"); !errors.Is(err, ErrRelationNotFound) {
			t.Fatalf("expected ErrRelationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "rel-1").Return(entities.CategoryRelation{ID: "rel-1"}, nil)
		r, err := uc.GetByID(context.Background(), "rel-1")
		if err != nil || r.ID != "rel-1" {
			t.Fatalf("unexpected result: %+v, %v", r, err)
		}
	})
}

func TestCategoryRelationUseCase_Update(t *testing.T) {
	created := fixedNow.Add(-48 * time.Hour)
	cmd := CategoryRelationCommand{
		SourceCategories: []string{"tiling"},
		RelationType:     entities.RelationTypeSuggestProductsByCategory,
		TargetCategory:   "adhesives",
	}

	t.Run("not found", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "rel-1").Return(entities.CategoryRelation{}, nil)
		if _, err := uc.Update(context.Background(), "rel-1", cmd); !errors.Is(err, ErrRelationNotFound) {
			t.Fatalf("expected ErrRelationNotFound, got %v", err)
		}
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "rel-1").Return(entities.CategoryRelation{ID: "rel-1", CreatedAt: created}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.CategoryRelation{}, nil)
		if _, err := uc.Update(context.Background(), "rel-1", cmd); !errors.Is(err, ErrRelationNotFound) {
			t.Fatalf("expected ErrRelationNotFound, got %v", err)
		}
	})

	t.Run("keeps registration order", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "rel-1").Return(entities.CategoryRelation{ID: "rel-1", CreatedAt: created}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.CategoryRelation{})).DoAndReturn(
			func(_ context.Context, r entities.CategoryRelation) (entities.CategoryRelation, error) {
				if r.ID != "rel-1" || !r.CreatedAt.Equal(created) {
					t.Fatalf("expected original id and created_at, got %+v", r)
				}
				if r.TargetCategory != "adhesives" {
					t.Fatalf("unexpected target %q", r.TargetCategory)
				}
				return r, nil
			},
		)

		if _, err := uc.Update(context.Background(), "rel-1", cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCategoryRelationUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newRelationUseCase(t)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidRelationID) {
			t.Fatalf("expected ErrInvalidRelationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().Delete(gomock.Any(), "rel-1").Return(false, nil)
		if err := uc.Delete(context.Background(), "rel-1"); !errors.Is(err, ErrRelationNotFound) {
			t.Fatalf("expected ErrRelationNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().Delete(gomock.Any(), "rel-1").Return(false, errors.New("db"))
		if err := uc.Delete(context.Background(), "rel-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newRelationUseCase(t)
		repo.EXPECT().Delete(gomock.Any(), "rel-1").Return(true, nil)
		if err := uc.Delete(context.Background(), "rel-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
