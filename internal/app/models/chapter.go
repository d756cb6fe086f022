package models

import (
	"time"
)

// Chapter defines the chapter model based on the 'chapters' table.
// SequenceOrder is caller-supplied, starts at 1 and is unique within a
// course; it is the only thing that defines "previous" and "next".
type Chapter struct {
	ID            int64     `json:"id" db:"id"`
	CourseID      int64     `json:"courseId" db:"course_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	VideoLink     string    `json:"videoLink" db:"video_link"`
	SequenceOrder int       `json:"sequenceOrder" db:"sequence_order"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
