package dto

// CreateCourseRequest is the mentor payload for creating a course
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateCourseRequest edits a course; empty fields are left unchanged
type UpdateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AssignStudentsRequest carries the student ids to enroll in a course
type AssignStudentsRequest struct {
	StudentIDs []int64 `json:"studentIds" binding:"required"`
}

// ActivateCourseRequest toggles a course's active flag
type ActivateCourseRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
