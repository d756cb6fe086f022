package models

import (
	"time"
)

// Certificate defines the certificate model based on the 'certificates'
// table. At most one certificate exists per (student, course) pair and it is
// immutable once issued.
type Certificate struct {
	ID                int64     `json:"id" db:"id"`
	StudentID         int64     `json:"studentId" db:"student_id"`
	CourseID          int64     `json:"courseId" db:"course_id"`
	CertificateNumber string    `json:"certificateNumber" db:"certificate_number"`
	IssuedAt          time.Time `json:"issuedAt" db:"issued_at"`
}
