package catalog

import (
	"github.com/montanaflynn/stats"

	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/pkg/common"
)

// NameValue is a single distribution bucket.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Overview is the analytics rollup served to the admin dashboard.
type Overview struct {
	TotalProducts        int              `json:"totalProducts"`
	FeaturedProducts     int              `json:"featuredProducts"`
	AverageDiscount      float64          `json:"averageDiscount"`
	PlatformDistribution []NameValue      `json:"platformDistribution"`
	CategoryDistribution []NameValue      `json:"categoryDistribution"`
	RecentlyAdded        []domain.Product `json:"recentlyAdded"`
}

// ComputeOverview aggregates the catalog. The input must be in
// chronological (oldest-first) order so that the recentlyAdded slice,
// the last five entries reversed, comes out most-recent-first.
func ComputeOverview(products []domain.Product) Overview {
	ov := Overview{
		TotalProducts:        len(products),
		PlatformDistribution: []NameValue{},
		CategoryDistribution: []NameValue{},
		RecentlyAdded:        []domain.Product{},
	}

	var discounts []float64
	platformIdx := map[string]int{}
	categoryIdx := map[string]int{}

	for _, p := range products {
		if p.Featured {
			ov.FeaturedProducts++
		}
		if p.OriginalPrice != "" && p.DiscountedPrice != "" {
			original := common.ParseFloat64(p.OriginalPrice)
			discounted := common.ParseFloat64(p.DiscountedPrice)
			if original != 0 {
				discounts = append(discounts, (original-discounted)/original*100)
			}
		}

		// buckets keep first-encounter order
		if i, ok := platformIdx[p.Platform]; ok {
			ov.PlatformDistribution[i].Value++
		} else {
			platformIdx[p.Platform] = len(ov.PlatformDistribution)
			ov.PlatformDistribution = append(ov.PlatformDistribution, NameValue{Name: p.Platform, Value: 1})
		}
		if p.Category != "" {
			if i, ok := categoryIdx[p.Category]; ok {
				ov.CategoryDistribution[i].Value++
			} else {
				categoryIdx[p.Category] = len(ov.CategoryDistribution)
				ov.CategoryDistribution = append(ov.CategoryDistribution, NameValue{Name: p.Category, Value: 1})
			}
		}
	}

	if len(discounts) > 0 {
		mean, err := stats.Mean(discounts)
		if err == nil {
			ov.AverageDiscount = common.Round2(mean)
		}
	}

	n := len(products)
	start := n - 5
	if start < 0 {
		start = 0
	}
	for i := n - 1; i >= start; i-- {
		ov.RecentlyAdded = append(ov.RecentlyAdded, products[i])
	}

	return ov
}
