package services

import (
	"context"

	appauth "github.com/skillpath/lms-backend/internal/app/auth"
	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
)

// CourseService handles course lifecycle and enrollment management
type CourseService struct {
	courses CourseStore
	users   UserStore
	authz   *appauth.AuthorizationService
}

// NewCourseService creates a new course service
func NewCourseService(courses CourseStore, users UserStore, authz *appauth.AuthorizationService) *CourseService {
	return &CourseService{
		courses: courses,
		users:   users,
		authz:   authz,
	}
}

// CreateCourse creates a course owned by the calling mentor
func (s *CourseService) CreateCourse(ctx context.Context, mentorID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		MentorID:    mentorID,
		IsActive:    true,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("courseId", course.ID).
		Int64("mentorId", mentorID).
		Msg("Course created")

	return course, nil
}

// MyCourses lists courses scoped to the caller's role: mentors see the
// courses they own, students the ones they are enrolled in, admins all.
func (s *CourseService) MyCourses(ctx context.Context, userID int64, role models.RoleType) ([]*models.Course, error) {
	switch role {
	case models.RoleMentor:
		return s.courses.ListByMentor(ctx, userID)
	case models.RoleStudent:
		return s.courses.ListByStudent(ctx, userID)
	default:
		return s.courses.ListAll(ctx)
	}
}

// GetCourse retrieves a course after an access check, with the mentor
// relation attached
func (s *CourseService) GetCourse(ctx context.Context, courseID, userID int64, role models.RoleType) (*models.Course, error) {
	course, err := s.authz.ValidateCourseAccess(ctx, courseID, userID, role)
	if err != nil {
		return nil, err
	}

	mentor, err := s.users.GetByID(ctx, course.MentorID)
	if err == nil {
		course.Mentor = mentor
	}

	return course, nil
}

// UpdateCourse edits a course; only its owner (or an admin) may do so
func (s *CourseService) UpdateCourse(ctx context.Context, courseID, userID int64, role models.RoleType, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.authz.ValidateCourseOwner(ctx, courseID, userID, role)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course and everything under it
func (s *CourseService) DeleteCourse(ctx context.Context, courseID, userID int64, role models.RoleType) error {
	if _, err := s.authz.ValidateCourseOwner(ctx, courseID, userID, role); err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, courseID); err != nil {
		return err
	}

	logger.Info().Int64("courseId", courseID).Msg("Course deleted")

	return nil
}

// AssignStudents enrolls additional students into a course. Every id must
// refer to an active student account; students already enrolled are ignored.
func (s *CourseService) AssignStudents(ctx context.Context, courseID, userID int64, role models.RoleType, studentIDs []int64) (*models.Course, error) {
	if _, err := s.authz.ValidateCourseOwner(ctx, courseID, userID, role); err != nil {
		return nil, err
	}

	ids := dedupeIDs(studentIDs)
	if err := s.validateStudentIDs(ctx, ids); err != nil {
		return nil, err
	}

	if err := s.courses.AssignStudents(ctx, courseID, ids); err != nil {
		return nil, err
	}

	return s.courses.GetByID(ctx, courseID)
}

// ReplaceStudents swaps a course's full enrollment set (admin operation)
func (s *CourseService) ReplaceStudents(ctx context.Context, courseID int64, studentIDs []int64) (*models.Course, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	ids := dedupeIDs(studentIDs)
	if err := s.validateStudentIDs(ctx, ids); err != nil {
		return nil, err
	}

	if err := s.courses.ReplaceStudents(ctx, courseID, ids); err != nil {
		return nil, err
	}

	return s.courses.GetByID(ctx, courseID)
}

// SetCourseActive toggles the course's active flag (admin operation)
func (s *CourseService) SetCourseActive(ctx context.Context, courseID int64, active bool) (*models.Course, error) {
	if err := s.courses.SetActive(ctx, courseID, active); err != nil {
		return nil, err
	}

	return s.courses.GetByID(ctx, courseID)
}

func (s *CourseService) validateStudentIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	count, err := s.users.CountActiveStudents(ctx, ids)
	if err != nil {
		return err
	}
	if count != len(ids) {
		return apperrors.ErrInvalidStudentIDs
	}

	return nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
