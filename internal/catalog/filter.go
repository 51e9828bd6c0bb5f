package catalog

import (
	"sort"
	"strings"

	"shopwave/internal/domain"
)

// Sort keys accepted by FilterAndSort.
const (
	SortFeatured   = "featured"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortNameAsc    = "name-asc"
	SortRatingDesc = "rating-desc"
)

// Criteria describes one filtered view of the catalog. It is transient:
// owned by the view requesting the list, never persisted.
type Criteria struct {
	Category   string // "all" means no category filter
	SearchText string
	MinPrice   float64
	MaxPrice   float64
	SortKey    string
}

// DefaultCriteria matches every product and keeps featured items first.
func DefaultCriteria() Criteria {
	return Criteria{Category: "all", MinPrice: 0, MaxPrice: 1000, SortKey: SortFeatured}
}

// FilterAndSort returns a new slice of products matching the criteria,
// ordered by the criteria's sort key. The input is never mutated and the
// result is freshly allocated on every call, so the function is safe to
// share across handlers.
//
// Sorting is stable. The "featured" key is a partition, not a full sort:
// featured products precede the rest, each side keeping its input order.
func FilterAndSort(products []domain.Product, c Criteria) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(c.SearchText))

	for _, p := range products {
		if c.Category != "all" && c.Category != "" && p.Category != c.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if p.Price < c.MinPrice || p.Price > c.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch c.SortKey {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default: // featured
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}
	return out
}

// ValidSortKey reports whether s is one of the recognized sort keys.
func ValidSortKey(s string) bool {
	switch s {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNameAsc, SortRatingDesc:
		return true
	}
	return false
}
