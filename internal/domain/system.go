package domain

import (
	"time"
)

// SysOpr is an operator account for the admin panel. The storefront
// runs with a single seeded account, the schema allows more.
type SysOpr struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id" form:"id"`
	Realname  string    `json:"realname" form:"realname"`
	Email     string    `json:"email" form:"email"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username" form:"username"`
	Password  string    `json:"-" form:"-"`
	Level     string    `json:"level" form:"level"`
	Status    string    `json:"status" form:"status"`
	LastLogin time.Time `json:"last_login" form:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysOpr) TableName() string {
	return "users"
}

// SysOprLog records an admin operation for the audit trail.
type SysOprLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OprName   string    `json:"opr_name"`
	OptAction string    `json:"opt_action"`
	OptDesc   string    `json:"opt_desc"`
	OptTime   time.Time `json:"opt_time"`
}

// TableName Specify table name
func (SysOprLog) TableName() string {
	return "sys_opr_log"
}
