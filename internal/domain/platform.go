package domain

import "time"

// Platform is an affiliate marketplace (Amazon, Flipkart, Myntra, ...)
// with optional branding used by the storefront.
type Platform struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id" form:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name" form:"name"`
	Icon      string    `gorm:"size:1024" json:"icon" form:"icon"`
	Color     string    `gorm:"size:64" json:"color" form:"color"`
	IsActive  bool      `json:"isActive" form:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName Specify table name
func (Platform) TableName() string {
	return "platforms"
}
