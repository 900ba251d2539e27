package users

import "time"

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Phone        string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Avatar       *string
	Role         string `gorm:"type:varchar(10);not null;default:'user'"` // "user" | "admin"

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
