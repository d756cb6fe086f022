package dto

import (
	"github.com/skillpath/lms-backend/internal/app/models"
)

// ChapterStatus is a chapter decorated with the viewer's completion state.
// IsLocked only looks at the immediately preceding chapter; the write path
// independently enforces the full prefix.
type ChapterStatus struct {
	models.Chapter
	IsCompleted bool `json:"isCompleted"`
	IsLocked    bool `json:"isLocked"`
}

// ProgressSummary carries the aggregate counters for one student and course
type ProgressSummary struct {
	TotalChapters        int `json:"totalChapters"`
	CompletedChapters    int `json:"completedChapters"`
	CompletionPercentage int `json:"completionPercentage"`
}

// CourseProgressResponse is the course view with per-chapter status
type CourseProgressResponse struct {
	Course   *models.Course  `json:"course"`
	Chapters []ChapterStatus `json:"chapters"`
	Progress ProgressSummary `json:"progress"`
}

// CourseRef is a light course reference used inside progress listings
type CourseRef struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// StudentCourseProgress is one course entry in a student's own progress list
type StudentCourseProgress struct {
	Course               CourseRef `json:"course"`
	TotalChapters        int       `json:"totalChapters"`
	CompletedChapters    int       `json:"completedChapters"`
	CompletionPercentage int       `json:"completionPercentage"`
}

// EnrolledStudentProgress is one student row in the mentor's course view
type EnrolledStudentProgress struct {
	ID                   int64  `json:"id"`
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	CompletedChapters    int    `json:"completedChapters"`
	TotalChapters        int    `json:"totalChapters"`
	CompletionPercentage int    `json:"completionPercentage"`
}

// CourseStudentsProgressResponse lists progress of every enrolled student
type CourseStudentsProgressResponse struct {
	Course        CourseRef                 `json:"course"`
	TotalChapters int                       `json:"totalChapters"`
	Students      []EnrolledStudentProgress `json:"students"`
}
