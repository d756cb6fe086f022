package auth

import (
	"context"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

// CourseGetter resolves courses for access decisions
type CourseGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// AuthorizationService centralizes course-level access decisions.
// Admins pass every check.
type AuthorizationService struct {
	courses CourseGetter
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(courses CourseGetter) *AuthorizationService {
	return &AuthorizationService{
		courses: courses,
	}
}

// IsAdmin reports whether the role is the admin role
func (s *AuthorizationService) IsAdmin(role models.RoleType) bool {
	return role == models.RoleAdmin
}

// ValidateCourseOwner loads the course and requires the caller to be the
// owning mentor or an admin. Returns the course so callers avoid a second
// lookup.
func (s *AuthorizationService) ValidateCourseOwner(ctx context.Context, courseID, userID int64, role models.RoleType) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if s.IsAdmin(role) {
		return course, nil
	}

	if course.MentorID != userID {
		return nil, apperrors.ErrNotCourseOwner
	}

	return course, nil
}

// ValidateCourseAccess loads the course and requires the caller to be an
// enrolled student, the owning mentor, or an admin.
func (s *AuthorizationService) ValidateCourseAccess(ctx context.Context, courseID, userID int64, role models.RoleType) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if s.IsAdmin(role) {
		return course, nil
	}

	if role == models.RoleMentor {
		if course.MentorID != userID {
			return nil, apperrors.ErrNotCourseOwner
		}
		return course, nil
	}

	if !course.HasStudent(userID) {
		return nil, apperrors.ErrNotEnrolled
	}

	return course, nil
}
