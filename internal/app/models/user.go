package models

import (
	"time"
)

// RoleType is the closed set of account roles. Authorization decisions
// branch on this type, never on raw strings from the request.
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleMentor  RoleType = "MENTOR"
	RoleAdmin   RoleType = "ADMIN"
)

// Valid reports whether the role is one of the known variants.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Email      string    `json:"email" db:"email" example:"student@skillpath.io"`
	Password   string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FullName   string    `json:"fullName" db:"full_name" example:"Jane Doe"`
	RoleType   RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`
	IsApproved bool      `json:"isApproved" db:"is_approved"` // mentors start unapproved
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
