package models

import "time"

// UserLoginLog records a successful token issuance. Rows are written
// asynchronously by the worker, never on the request path.
type UserLoginLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ClientIP  string    `gorm:"type:varchar(64)" json:"client_ip"`
	UserAgent string    `gorm:"type:varchar(500)" json:"user_agent"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (UserLoginLog) TableName() string {
	return "user_login_logs"
}
