// Package catalog implements the product query engine and the
// analytics rollup used by the storefront API. Both operate on full
// in-memory collections; at catalog volumes a linear pass is cheaper
// than maintaining any index.
package catalog

import (
	"sort"
	"strings"

	"github.com/afarenziya/smartdeals/internal/domain"
)

// Sort keys accepted by the products endpoint.
const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

// Filter is the query specification for the catalog. Every field is
// optional; the zero value means "no constraint".
type Filter struct {
	Platform string
	Category string
	Search   string
	Featured *bool
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}

// IsZero reports whether no filter field was supplied at all. The
// engine keeps a distinct fast path for that case.
func (f Filter) IsZero() bool {
	return f.Platform == "" && f.Category == "" && f.Search == "" &&
		f.Featured == nil && f.MinPrice == nil && f.MaxPrice == nil && f.SortBy == ""
}

// Query returns the subset of products matching the filter, ordered by
// the requested sort key (newest-first by default). All predicates are
// combined as a conjunction; the search term alone matches any of
// title, description, category or platform. The input slice is never
// mutated.
func Query(products []domain.Product, f Filter) []domain.Product {
	if f.IsZero() {
		out := make([]domain.Product, len(products))
		copy(out, products)
		sortNewest(out)
		return out
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.matches(&p) {
			out = append(out, p)
		}
	}

	switch f.SortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() < out[j].EffectivePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() > out[j].EffectivePrice()
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RatingValue() > out[j].RatingValue()
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReviewCountValue() > out[j].ReviewCountValue()
		})
	default:
		// newest, including any unrecognized sort key
		sortNewest(out)
	}
	return out
}

func (f Filter) matches(p *domain.Product) bool {
	if f.Platform != "" && !strings.EqualFold(p.Platform, f.Platform) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	// NaN bounds (malformed query input) compare false and therefore
	// exclude every product, same as the permissive behavior of the
	// original storefront.
	if f.MinPrice != nil && !(p.EffectivePrice() >= *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && !(p.EffectivePrice() <= *f.MaxPrice) {
		return false
	}
	return true
}

func matchesSearch(p *domain.Product, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Platform), term)
}

func sortNewest(products []domain.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
