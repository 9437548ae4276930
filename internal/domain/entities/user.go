package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents staff roles
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleGallery UserRole = "gallery"
)

// User represents a staff user (admin or gallery owner)
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// LoginInput represents input for staff login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful login response
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}
