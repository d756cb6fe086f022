package models

import (
	"time"
)

// Progress defines a completion record based on the 'progress' table.
// The existence of a row is the sole source of truth for "chapter completed
// by student"; the (student_id, chapter_id) pair is unique.
type Progress struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	ChapterID   int64     `json:"chapterId" db:"chapter_id"`
	CompletedAt time.Time `json:"completedAt" db:"completed_at"`
}
