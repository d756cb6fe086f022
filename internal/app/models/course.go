package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table.
// AssignedStudentIDs mirrors the 'course_students' join table; membership
// there is the sole definition of enrollment.
type Course struct {
	ID                 int64     `json:"id" db:"id"`
	Title              string    `json:"title" db:"title"`
	Description        string    `json:"description" db:"description"`
	MentorID           int64     `json:"mentorId" db:"mentor_id"`
	IsActive           bool      `json:"isActive" db:"is_active"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
	AssignedStudentIDs []int64   `json:"assignedStudents"`
	Mentor             *User     `json:"mentor,omitempty"` // Relation, no db tag
}

// HasStudent reports whether the student is enrolled in the course.
func (c *Course) HasStudent(studentID int64) bool {
	for _, id := range c.AssignedStudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}
