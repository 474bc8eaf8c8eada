package repository

import (
	"sort"
	"strings"
	"time"

	"product_estimator/internal/domain/entities"
)

// timestampLayout is fixed width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t.UTC()
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// applyListFilter filters and orders estimates in memory for backends that
// cannot query on the summary columns.
func applyListFilter(in []entities.Estimate, f entities.EstimateListFilter) []entities.Estimate {
	out := make([]entities.Estimate, 0, len(in))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, e := range in {
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		out = append(out, e)
	}

	less := estimateLess(f.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		if f.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func matchesSearch(e entities.Estimate, search string) bool {
	for _, field := range []string{e.Name, e.Customer.Name, e.Customer.Email, e.Customer.Phone, e.Customer.Postcode} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func estimateLess(sortBy string) func(a, b entities.Estimate) bool {
	switch sortBy {
	case entities.SortByUpdatedAt:
		return func(a, b entities.Estimate) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case entities.SortByName:
		return func(a, b entities.Estimate) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case entities.SortByTotalMin:
		return func(a, b entities.Estimate) bool { return a.MinTotal < b.MinTotal }
	case entities.SortByTotalMax:
		return func(a, b entities.Estimate) bool { return a.MaxTotal < b.MaxTotal }
	default:
		return func(a, b entities.Estimate) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

// sortRelations puts rules in registration order: CreatedAt, then ID.
func sortRelations(rules []entities.CategoryRelation) {
	sort.SliceStable(rules, func(i, j int) bool {
		if !rules[i].CreatedAt.Equal(rules[j].CreatedAt) {
			return rules[i].CreatedAt.Before(rules[j].CreatedAt)
		}
		return rules[i].ID < rules[j].ID
	})
}
