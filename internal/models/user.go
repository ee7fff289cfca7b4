package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

type User struct {
	ID         int        `json:"id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Password   string     `json:"password,omitempty"`
	Batch      string     `json:"batch,omitempty"`
	Department string     `json:"department,omitempty"`
	Points     int        `json:"points"`
	Badges     []string   `json:"badges,omitempty"`
	Status     string     `json:"status,omitempty"`
	Role       string     `json:"role"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Roles assigned through user_roles. The role decides which complaints a
// user sees and which mutations the services permit.
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Batch    string `json:"batch" validate:"omitempty,max=50"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

type ProfileUpdateRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2,max=100"`
	Batch      string `json:"batch" validate:"omitempty,max=50"`
	Department string `json:"department" validate:"omitempty,max=100"`
}
