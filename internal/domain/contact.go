package domain

import "time"

// Contact is a visitor inquiry submitted through the contact form.
// Rows are write-once, there is no update path.
type Contact struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id" form:"id"`
	Name      string    `gorm:"not null" json:"name" form:"name"`
	Email     string    `gorm:"not null" json:"email" form:"email"`
	Subject   string    `gorm:"not null" json:"subject" form:"subject"`
	Message   string    `gorm:"not null" json:"message" form:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName Specify table name
func (Contact) TableName() string {
	return "contacts"
}
