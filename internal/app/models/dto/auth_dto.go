package dto

import (
	"github.com/skillpath/lms-backend/internal/app/models"
)

// RegisterRequest is the payload for account registration.
// Role may be STUDENT or MENTOR; admin accounts are seeded, never registered.
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=STUDENT MENTOR"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the authenticated user
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"` // seconds
	User      *models.User `json:"user"`
}
