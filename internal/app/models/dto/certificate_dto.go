package dto

import (
	"time"

	"github.com/skillpath/lms-backend/internal/app/models"
)

// CertificateResponse is the issued certificate with display metadata.
// Rendering to a document format is left to clients.
type CertificateResponse struct {
	Certificate *models.Certificate `json:"certificate"`
	StudentName string              `json:"studentName"`
	CourseTitle string              `json:"courseTitle"`
	MentorName  string              `json:"mentorName,omitempty"`
}

// CertificateVerification is the public verification result
type CertificateVerification struct {
	Valid             bool      `json:"valid"`
	CertificateNumber string    `json:"certificateNumber"`
	StudentName       string    `json:"studentName"`
	CourseTitle       string    `json:"courseTitle"`
	IssuedAt          time.Time `json:"issuedAt"`
}
