package users

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"not null"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email"`

	// nil for accounts created through Google sign-in
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`

	Role       string
	IsVerified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
