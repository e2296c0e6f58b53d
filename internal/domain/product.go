package domain

import (
	"time"

	"github.com/afarenziya/smartdeals/pkg/common"
)

// Product represents a curated deal listing with an outbound affiliate link.
// Prices, rating and review count are stored as text-encoded decimals so the
// storefront can display them verbatim; they are parsed on demand.
type Product struct {
	ID                 string    `gorm:"primaryKey;size:36" json:"id" form:"id"`
	Title              string    `gorm:"index;not null" json:"title" form:"title"`
	Description        string    `json:"description" form:"description"`
	OriginalPrice      string    `gorm:"size:32" json:"originalPrice" form:"originalPrice"`
	DiscountedPrice    string    `gorm:"size:32" json:"discountedPrice" form:"discountedPrice"`
	ImageUrl           string    `gorm:"size:1024" json:"imageUrl" form:"imageUrl"`
	AffiliateLink      string    `gorm:"size:1024;not null" json:"affiliateLink" form:"affiliateLink"`
	Platform           string    `gorm:"index;not null" json:"platform" form:"platform"`
	Category           string    `gorm:"index" json:"category" form:"category"`
	Featured           bool      `json:"featured" form:"featured"`
	AutoFetchPrice     bool      `json:"autoFetchPrice" form:"autoFetchPrice"`
	Rating             string    `gorm:"size:8" json:"rating" form:"rating"`
	ReviewCount        string    `gorm:"size:16" json:"reviewCount" form:"reviewCount"`
	DiscountPercentage string    `gorm:"size:16" json:"discountPercentage" form:"discountPercentage"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

// EffectivePrice is the price used for range filtering and price sorts:
// the discounted price when present, else the original price, else 0.
// Non-numeric values parse to 0 rather than failing.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountedPrice != "" {
		return common.ParseFloat64(p.DiscountedPrice)
	}
	if p.OriginalPrice != "" {
		return common.ParseFloat64(p.OriginalPrice)
	}
	return 0
}

// RatingValue parses the rating text, missing or malformed treated as 0.
func (p *Product) RatingValue() float64 {
	return common.ParseFloat64(p.Rating)
}

// ReviewCountValue parses the review count text, missing or malformed treated as 0.
func (p *Product) ReviewCountValue() float64 {
	return common.ParseFloat64(p.ReviewCount)
}
