package models

import "time"

// SessionModel is the GORM model for admin login sessions
type SessionModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	IPAddress string    `gorm:"column:ip_address;size:45"`
	UserAgent string    `gorm:"column:user_agent;size:512"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
