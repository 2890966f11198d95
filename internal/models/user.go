package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account that can post microposts and follow other users.
// Email and username are unique under case-insensitive comparison; the
// service layer checks with LOWER() lookups and the unique indexes back
// it up against races.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Username     string    `json:"username" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserCompact is the trimmed-down user shape embedded in listings.
type UserCompact struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// ToCompact returns the compact representation of the user.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
