package services

import (
	"context"

	appauth "github.com/skillpath/lms-backend/internal/app/auth"
	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
)

// ChapterService handles chapter authoring under courses
type ChapterService struct {
	chapters ChapterStore
	authz    *appauth.AuthorizationService
}

// NewChapterService creates a new chapter service
func NewChapterService(chapters ChapterStore, authz *appauth.AuthorizationService) *ChapterService {
	return &ChapterService{
		chapters: chapters,
		authz:    authz,
	}
}

// CreateChapter adds a chapter to a course owned by the caller. The
// sequence order is caller-supplied and must be unused within the course.
func (s *ChapterService) CreateChapter(ctx context.Context, courseID, userID int64, role models.RoleType, req *dto.CreateChapterRequest) (*models.Chapter, error) {
	if _, err := s.authz.ValidateCourseOwner(ctx, courseID, userID, role); err != nil {
		return nil, err
	}

	chapter := &models.Chapter{
		CourseID:      courseID,
		Title:         req.Title,
		Description:   req.Description,
		VideoLink:     req.VideoLink,
		SequenceOrder: req.SequenceOrder,
	}

	if err := s.chapters.Create(ctx, chapter); err != nil {
		return nil, err
	}

	return chapter, nil
}

// ListChapters returns a course's chapters in sequence order after an
// access check
func (s *ChapterService) ListChapters(ctx context.Context, courseID, userID int64, role models.RoleType) ([]*models.Chapter, error) {
	if _, err := s.authz.ValidateCourseAccess(ctx, courseID, userID, role); err != nil {
		return nil, err
	}

	return s.chapters.ListByCourse(ctx, courseID)
}

// GetChapter retrieves a single chapter after a course access check
func (s *ChapterService) GetChapter(ctx context.Context, chapterID, userID int64, role models.RoleType) (*models.Chapter, error) {
	chapter, err := s.chapters.GetByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authz.ValidateCourseAccess(ctx, chapter.CourseID, userID, role); err != nil {
		return nil, err
	}

	return chapter, nil
}

// UpdateChapter edits a chapter owned by the caller's course
func (s *ChapterService) UpdateChapter(ctx context.Context, chapterID, userID int64, role models.RoleType, req *dto.UpdateChapterRequest) (*models.Chapter, error) {
	chapter, err := s.chapters.GetByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authz.ValidateCourseOwner(ctx, chapter.CourseID, userID, role); err != nil {
		return nil, err
	}

	if req.Title != "" {
		chapter.Title = req.Title
	}
	if req.Description != "" {
		chapter.Description = req.Description
	}
	if req.VideoLink != "" {
		chapter.VideoLink = req.VideoLink
	}
	if req.SequenceOrder != nil {
		chapter.SequenceOrder = *req.SequenceOrder
	}

	if err := s.chapters.Update(ctx, chapter); err != nil {
		return nil, err
	}

	return chapter, nil
}

// DeleteChapter removes a chapter; completion records referencing it
// cascade away
func (s *ChapterService) DeleteChapter(ctx context.Context, chapterID, userID int64, role models.RoleType) error {
	chapter, err := s.chapters.GetByID(ctx, chapterID)
	if err != nil {
		return err
	}

	if _, err := s.authz.ValidateCourseOwner(ctx, chapter.CourseID, userID, role); err != nil {
		return err
	}

	return s.chapters.Delete(ctx, chapterID)
}
