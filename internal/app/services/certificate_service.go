package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
)

// CertificateService issues and verifies course-completion certificates.
// A certificate exists for a (student, course) pair only after the student
// has completed every chapter, and once issued it never changes.
type CertificateService struct {
	certificates CertificateStore
	progress     ProgressStore
	chapters     ChapterStore
	courses      CourseStore
	users        UserStore
}

// NewCertificateService creates a new certificate service
func NewCertificateService(certificates CertificateStore, progress ProgressStore, chapters ChapterStore, courses CourseStore, users UserStore) *CertificateService {
	return &CertificateService{
		certificates: certificates,
		progress:     progress,
		chapters:     chapters,
		courses:      courses,
		users:        users,
	}
}

// IssueOrFetch returns the student's certificate for the course, minting it
// on first eligible request. Repeated calls return the same certificate.
func (s *CertificateService) IssueOrFetch(ctx context.Context, studentID, courseID int64) (*dto.CertificateResponse, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if !course.HasStudent(studentID) {
		return nil, apperrors.ErrNotEnrolled
	}

	total, err := s.chapters.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseHasNoChapters, "course has no chapters yet")
	}

	completed, err := s.progress.CountByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if completed < total {
		return nil, apperrors.NewCustomError(apperrors.ErrCertificateNotEarned,
			fmt.Sprintf("certificate available only after 100%% completion, current progress: %d%%",
				completionPercentage(completed, total)))
	}

	cert, err := s.certificates.GetByStudentCourse(ctx, studentID, courseID)
	if errors.Is(err, apperrors.ErrCertificateNotFound) {
		cert, err = s.mint(ctx, studentID, courseID)
	}
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, cert, course)
}

// Verify resolves a certificate by its public number. No authentication is
// required; employers check numbers printed on shared certificates.
func (s *CertificateService) Verify(ctx context.Context, certificateNumber string) (*dto.CertificateVerification, error) {
	cert, err := s.certificates.GetByNumber(ctx, certificateNumber)
	if err != nil {
		return nil, err
	}

	student, err := s.users.GetByID(ctx, cert.StudentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, cert.CourseID)
	if err != nil {
		return nil, err
	}

	return &dto.CertificateVerification{
		Valid:             true,
		CertificateNumber: cert.CertificateNumber,
		StudentName:       student.FullName,
		CourseTitle:       course.Title,
		IssuedAt:          cert.IssuedAt,
	}, nil
}

func (s *CertificateService) mint(ctx context.Context, studentID, courseID int64) (*models.Certificate, error) {
	cert := &models.Certificate{
		StudentID:         studentID,
		CourseID:          courseID,
		CertificateNumber: generateCertificateNumber(),
	}

	err := s.certificates.Create(ctx, cert)
	if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		// Lost the race against a concurrent issue; the stored one wins.
		return s.certificates.GetByStudentCourse(ctx, studentID, courseID)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentId", studentID).
		Int64("courseId", courseID).
		Str("certificateNumber", cert.CertificateNumber).
		Msg("Certificate issued")

	return cert, nil
}

func (s *CertificateService) buildResponse(ctx context.Context, cert *models.Certificate, course *models.Course) (*dto.CertificateResponse, error) {
	student, err := s.users.GetByID(ctx, cert.StudentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CertificateResponse{
		Certificate: cert,
		StudentName: student.FullName,
		CourseTitle: course.Title,
	}

	if mentor, err := s.users.GetByID(ctx, course.MentorID); err == nil {
		resp.MentorName = mentor.FullName
	}

	return resp, nil
}

// generateCertificateNumber produces numbers like CERT-1735689600000-3F2A81C0D
func generateCertificateNumber() string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("CERT-%d-%s", time.Now().UnixMilli(), random[:9])
}
