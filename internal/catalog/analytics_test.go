package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afarenziya/smartdeals/internal/domain"
)

func TestComputeOverviewEmpty(t *testing.T) {
	ov := ComputeOverview(nil)
	assert.Equal(t, 0, ov.TotalProducts)
	assert.Equal(t, 0, ov.FeaturedProducts)
	assert.Equal(t, 0.0, ov.AverageDiscount)
	assert.Empty(t, ov.PlatformDistribution)
	assert.Empty(t, ov.CategoryDistribution)
	assert.Empty(t, ov.RecentlyAdded)
}

func TestComputeOverviewAverageDiscountZeroWhenNoEligiblePairs(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Platform: "Amazon", OriginalPrice: "100"},
		{ID: "b", Platform: "Amazon", DiscountedPrice: "50"},
	}
	ov := ComputeOverview(products)
	// neither product has both prices, the mean must be 0 and not NaN
	assert.Equal(t, 0.0, ov.AverageDiscount)
}

func TestComputeOverviewAverageDiscount(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Platform: "Amazon", OriginalPrice: "100", DiscountedPrice: "50"},
	}
	ov := ComputeOverview(products)
	assert.InDelta(t, 50.0, ov.AverageDiscount, 0.001)

	products = append(products, domain.Product{
		ID: "b", Platform: "Flipkart", OriginalPrice: "200", DiscountedPrice: "150",
	})
	ov = ComputeOverview(products)
	assert.InDelta(t, 37.5, ov.AverageDiscount, 0.001)
}

func TestComputeOverviewCounts(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Platform: "Amazon", Category: "Electronics", Featured: true},
		{ID: "b", Platform: "Flipkart", Category: "Electronics"},
		{ID: "c", Platform: "Amazon", Featured: true},
	}
	ov := ComputeOverview(products)
	assert.Equal(t, 3, ov.TotalProducts)
	assert.Equal(t, 2, ov.FeaturedProducts)
	// first-encounter ordering
	require.Len(t, ov.PlatformDistribution, 2)
	assert.Equal(t, NameValue{Name: "Amazon", Value: 2}, ov.PlatformDistribution[0])
	assert.Equal(t, NameValue{Name: "Flipkart", Value: 1}, ov.PlatformDistribution[1])
	// empty category skipped
	require.Len(t, ov.CategoryDistribution, 1)
	assert.Equal(t, NameValue{Name: "Electronics", Value: 2}, ov.CategoryDistribution[0])
}

func TestComputeOverviewRecentlyAdded(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, n := range []int{0, 1, 3, 5, 8} {
		products := make([]domain.Product, 0, n)
		for i := 0; i < n; i++ {
			products = append(products, domain.Product{
				ID:        fmt.Sprintf("p%d", i),
				Platform:  "Amazon",
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
		}
		ov := ComputeOverview(products)

		want := 5
		if n < want {
			want = n
		}
		require.Len(t, ov.RecentlyAdded, want, "n=%d", n)
		// most recently inserted first
		for i := 0; i < want; i++ {
			assert.Equal(t, fmt.Sprintf("p%d", n-1-i), ov.RecentlyAdded[i].ID)
		}
	}
}
