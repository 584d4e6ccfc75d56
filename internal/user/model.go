package user

import (
	"time"

	"sportbook/internal/auth"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role" example:"user"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == auth.RoleAdmin
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Asha Rao"`
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"s3cretpass"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	auth.TokenPair
	User User `json:"user"`
}
