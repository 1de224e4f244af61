package models

import "time"

// UserModel is the GORM model for the users table
type UserModel struct {
	UserID       uint      `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;type:varchar(100);not null;uniqueIndex:uk_users_username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:'viewer'"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
