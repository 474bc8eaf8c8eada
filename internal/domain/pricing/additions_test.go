package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"product_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	products map[string]entities.CatalogProduct
	failing  map[string]bool
	calls    int
}

func (f *fakeCatalog) GetProduct(_ context.Context, id string) (entities.CatalogProduct, error) {
	f.calls++
	if f.failing[id] {
		return entities.CatalogProduct{}, errors.New("catalog down")
	}
	return f.products[id], nil
}

type fakeRelations struct {
	rules []entities.CategoryRelation
	err   error
}

func (f *fakeRelations) List(context.Context) ([]entities.CategoryRelation, error) {
	return f.rules, f.err
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]entities.CatalogProduct{
		"A": {ID: "A", Name: "Oak flooring", Price: 10, MinPrice: 10, MaxPrice: 20, CategoryIDs: []string{"flooring", "timber"}, PricingMethod: entities.PricingMethodPerArea},
		"B": {ID: "B", Name: "Underlay", Price: 15, CategoryIDs: []string{"accessories"}, PricingMethod: entities.PricingMethodFixed},
		"C": {ID: "C", Name: "Trim", Price: 4, CategoryIDs: []string{"accessories"}, PricingMethod: entities.PricingMethodPerArea},
	}}
}

func autoAdd(id, target string, sources ...string) entities.CategoryRelation {
	return entities.CategoryRelation{
		ID:               id,
		SourceCategories: sources,
		RelationType:     entities.RelationTypeAutoAddByCategory,
		ProductID:        target,
		CreatedAt:        time.Now(),
	}
}

func TestResolveAdditions_EndToEndExample(t *testing.T) {
	r := NewAdditionResolver(newCatalog(), &fakeRelations{rules: []entities.CategoryRelation{autoAdd("r1", "B", "flooring")}})

	b := r.ResolveAdditions(context.Background(), "A", 4*5)

	require.Len(t, b.Entries, 2)
	assert.Equal(t, "A", b.Entries[0].ProductID)
	assert.False(t, b.Entries[0].AutoAdded)
	assert.Equal(t, 200.0, b.Entries[0].MinTotal)
	assert.Equal(t, 400.0, b.Entries[0].MaxTotal)
	assert.Equal(t, "B", b.Entries[1].ProductID)
	assert.True(t, b.Entries[1].AutoAdded)
	assert.Equal(t, 15.0, b.Entries[1].MinTotal)
	assert.Equal(t, 15.0, b.Entries[1].MaxTotal)
	assert.Equal(t, 215.0, b.MinTotal)
	assert.Equal(t, 415.0, b.MaxTotal)
}

func TestResolveAdditions_NoMatchingRules(t *testing.T) {
	rules := []entities.CategoryRelation{
		autoAdd("r1", "B", "bathroom"),
		{ID: "r2", SourceCategories: []string{"flooring"}, RelationType: entities.RelationTypeSuggestProductsByCategory, TargetCategory: "accessories"},
	}
	r := NewAdditionResolver(newCatalog(), &fakeRelations{rules: rules})

	b := r.ResolveAdditions(context.Background(), "A", 10)

	require.Len(t, b.Entries, 1)
	assert.Equal(t, "A", b.Entries[0].ProductID)
	assert.Equal(t, b.Entries[0].Totals(), b.Totals)
}

func TestResolveAdditions_DeduplicatesTargets(t *testing.T) {
	rules := []entities.CategoryRelation{
		autoAdd("r1", "C", "timber"),
		autoAdd("r2", "B", "flooring"),
		autoAdd("r3", "C", "flooring", "timber"),
		autoAdd("r4", "B", "timber"),
	}
	r := NewAdditionResolver(newCatalog(), &fakeRelations{rules: rules})

	b := r.ResolveAdditions(context.Background(), "A", 2)

	require.Len(t, b.Entries, 3)
	assert.Equal(t, []string{"A", "C", "B"}, []string{b.Entries[0].ProductID, b.Entries[1].ProductID, b.Entries[2].ProductID})
}

func TestResolveAdditions_PrimaryNeverItsOwnCompanion(t *testing.T) {
	r := NewAdditionResolver(newCatalog(), &fakeRelations{rules: []entities.CategoryRelation{autoAdd("r1", "A", "flooring")}})

	b := r.ResolveAdditions(context.Background(), "A", 1)

	require.Len(t, b.Entries, 1)
}

func TestResolveAdditions_SkipsMissingTargets(t *testing.T) {
	catalog := newCatalog()
	catalog.failing = map[string]bool{"C": true}
	rules := []entities.CategoryRelation{
		autoAdd("r1", "deleted", "flooring"),
		autoAdd("r2", "C", "flooring"),
		autoAdd("r3", "B", "flooring"),
	}
	r := NewAdditionResolver(catalog, &fakeRelations{rules: rules})

	b := r.ResolveAdditions(context.Background(), "A", 20)

	require.Len(t, b.Entries, 2)
	assert.Equal(t, "B", b.Entries[1].ProductID)
	assert.Equal(t, 215.0, b.MinTotal)
}

func TestResolveAdditions_RulesStoreFailure(t *testing.T) {
	r := NewAdditionResolver(newCatalog(), &fakeRelations{err: errors.New("table missing")})

	b := r.ResolveAdditions(context.Background(), "A", 20)

	require.Len(t, b.Entries, 1)
	assert.Equal(t, 200.0, b.MinTotal)
}

func TestResolveAdditions_UnavailablePrimary(t *testing.T) {
	catalog := newCatalog()
	catalog.failing = map[string]bool{"B": true}
	r := NewAdditionResolver(catalog, &fakeRelations{})

	assert.Empty(t, r.ResolveAdditions(context.Background(), "missing", 20).Entries)
	assert.Empty(t, r.ResolveAdditions(context.Background(), "B", 20).Entries)

	_, err := r.Select(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductUnavailable)
	_, err = r.Select(context.Background(), "B")
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestResolveAdditions_Idempotent(t *testing.T) {
	rules := []entities.CategoryRelation{autoAdd("r1", "B", "flooring"), autoAdd("r2", "C", "timber")}
	r := NewAdditionResolver(newCatalog(), &fakeRelations{rules: rules})

	first := r.ResolveAdditions(context.Background(), "A", 13.5)
	second := r.ResolveAdditions(context.Background(), "A", 13.5)

	assert.Equal(t, first, second)
}

func TestSelect_NilResolver(t *testing.T) {
	var r *AdditionResolver
	_, err := r.Select(context.Background(), "A")
	assert.ErrorIs(t, err, ErrProductUnavailable)
}
