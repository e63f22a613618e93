package model

import "time"

// User account statuses.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Simple role labels carried on the user row, used alongside the RBAC
// tables for coarse admin/ownership checks.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an identity record. The password hash is never serialized and is
// excluded from default repository projections.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	Role         string    `json:"role"`
	Avatar       *string   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Name     string  `json:"name" binding:"required,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
	Password string  `json:"password" binding:"required,min=6,max=128"`
	Role     string  `json:"role" binding:"omitempty,max=64"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
