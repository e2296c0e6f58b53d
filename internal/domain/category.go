package domain

import "time"

// Category is a named product grouping shown in the storefront filters.
type Category struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" form:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name" form:"name"`
	Description string    `json:"description" form:"description"`
	Icon        string    `gorm:"size:1024" json:"icon" form:"icon"`
	IsActive    bool      `json:"isActive" form:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName Specify table name
func (Category) TableName() string {
	return "categories"
}
