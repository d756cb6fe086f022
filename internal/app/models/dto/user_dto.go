package dto

// UpdateUserRequest is the admin payload for editing an account.
// Zero-valued fields are left unchanged.
type UpdateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=STUDENT MENTOR ADMIN"`
}

// ApproveMentorRequest toggles a mentor's approval flag
type ApproveMentorRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// ActivateUserRequest toggles an account's active flag
type ActivateUserRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
