package repository

import (
	"testing"
	"time"

	"product_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func ids(es []entities.Estimate) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.ID)
	}
	return out
}

func TestApplyListFilter(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []entities.Estimate{
		{ID: "1", Name: "Kitchen", Status: entities.EstimateStatusSaved, MinTotal: 300, CreatedAt: base.Add(2 * time.Hour), Customer: entities.Customer{Email: "ana@example.com"}},
		{ID: "2", Name: "bathroom", Status: entities.EstimateStatusConverted, MinTotal: 100, CreatedAt: base},
		{ID: "3", Name: "Attic", Status: entities.EstimateStatusSaved, MinTotal: 200, CreatedAt: base.Add(time.Hour), Customer: entities.Customer{Postcode: "2000"}},
	}

	assert.Equal(t, []string{"2", "3", "1"}, ids(applyListFilter(in, entities.EstimateListFilter{})))
	assert.Equal(t, []string{"1", "3"}, ids(applyListFilter(in, entities.EstimateListFilter{SortBy: entities.SortByCreatedAt, Desc: true, Status: entities.EstimateStatusSaved})))
	assert.Equal(t, []string{"3", "2", "1"}, ids(applyListFilter(in, entities.EstimateListFilter{SortBy: entities.SortByName})))
	assert.Equal(t, []string{"2", "3", "1"}, ids(applyListFilter(in, entities.EstimateListFilter{SortBy: entities.SortByTotalMin})))
	assert.Equal(t, []string{"1"}, ids(applyListFilter(in, entities.EstimateListFilter{Search: "ANA@"})))
	assert.Equal(t, []string{"3"}, ids(applyListFilter(in, entities.EstimateListFilter{Search: "2000"})))
}

func TestSortRelations(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rules := []entities.CategoryRelation{
		{ID: "c", CreatedAt: at.Add(time.Minute)},
		{ID: "b", CreatedAt: at},
		{ID: "a", CreatedAt: at},
	}
	sortRelations(rules)
	assert.Equal(t, "a", rules[0].ID)
	assert.Equal(t, "b", rules[1].ID)
	assert.Equal(t, "c", rules[2].ID)
}

func TestTimestampsSortLexically(t *testing.T) {
	a := formatTime(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	b := formatTime(time.Date(2026, 1, 1, 10, 0, 0, 500, time.UTC))
	assert.Less(t, a, b)
	assert.Equal(t, time.Date(2026, 1, 1, 10, 0, 0, 500, time.UTC), parseTime(b))
}
