package services

import (
	"context"
	"errors"
	"math"

	appauth "github.com/skillpath/lms-backend/internal/app/auth"
	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
)

// ProgressService implements the sequential chapter-completion model.
//
// The write path (CompleteChapter) requires every chapter earlier in the
// sequence to be completed before accepting a new completion. The read path
// (CourseStatus) marks a chapter locked only when its immediate predecessor
// is incomplete; because completions can only ever be appended in order, the
// two views agree for any state the write path can produce.
type ProgressService struct {
	progress ProgressStore
	chapters ChapterStore
	courses  CourseStore
	users    UserStore
	authz    *appauth.AuthorizationService
}

// NewProgressService creates a new progress service
func NewProgressService(progress ProgressStore, chapters ChapterStore, courses CourseStore, users UserStore, authz *appauth.AuthorizationService) *ProgressService {
	return &ProgressService{
		progress: progress,
		chapters: chapters,
		courses:  courses,
		users:    users,
		authz:    authz,
	}
}

// CompleteChapter records a completion for the student. The student must be
// enrolled, must not have completed the chapter already, and must have
// completed every chapter with a lower sequence order.
func (s *ProgressService) CompleteChapter(ctx context.Context, studentID, chapterID int64) (*models.Progress, error) {
	chapter, err := s.chapters.GetByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, chapter.CourseID)
	if err != nil {
		return nil, err
	}

	if !course.HasStudent(studentID) {
		return nil, apperrors.ErrNotEnrolled
	}

	done, err := s.progress.Exists(ctx, studentID, chapterID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, apperrors.ErrChapterAlreadyCompleted
	}

	completed, err := s.completedSet(ctx, studentID, course.ID)
	if err != nil {
		return nil, err
	}

	all, err := s.chapters.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	for _, c := range all {
		if c.SequenceOrder < chapter.SequenceOrder && !completed[c.ID] {
			return nil, apperrors.ErrChaptersOutOfSequence
		}
	}

	record := &models.Progress{
		StudentID: studentID,
		CourseID:  course.ID,
		ChapterID: chapterID,
	}

	// The unique constraint turns a lost race into the same denial the
	// pre-check above produces.
	if err := s.progress.Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentId", studentID).
		Int64("chapterId", chapterID).
		Int64("courseId", course.ID).
		Msg("Chapter completed")

	return record, nil
}

// CourseStatus returns the per-chapter view of a course for the caller.
// Students see their own completion and lock state; mentors and admins see
// every chapter unlocked.
func (s *ProgressService) CourseStatus(ctx context.Context, courseID, userID int64, role models.RoleType) (*dto.CourseProgressResponse, error) {
	course, err := s.authz.ValidateCourseAccess(ctx, courseID, userID, role)
	if err != nil {
		return nil, err
	}

	chapters, err := s.chapters.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	completed := map[int64]bool{}
	if role == models.RoleStudent {
		completed, err = s.completedSet(ctx, userID, courseID)
		if err != nil {
			return nil, err
		}
	}

	statuses := make([]dto.ChapterStatus, 0, len(chapters))
	completedCount := 0
	for i, chapter := range chapters {
		isCompleted := completed[chapter.ID]
		if isCompleted {
			completedCount++
		}

		locked := false
		if role == models.RoleStudent && i > 0 {
			locked = !completed[chapters[i-1].ID]
		}

		statuses = append(statuses, dto.ChapterStatus{
			Chapter:     *chapter,
			IsCompleted: isCompleted,
			IsLocked:    locked,
		})
	}

	return &dto.CourseProgressResponse{
		Course:   course,
		Chapters: statuses,
		Progress: dto.ProgressSummary{
			TotalChapters:        len(chapters),
			CompletedChapters:    completedCount,
			CompletionPercentage: completionPercentage(completedCount, len(chapters)),
		},
	}, nil
}

// MyProgress summarizes the student's progress across every course they
// have completion records in
func (s *ProgressService) MyProgress(ctx context.Context, studentID int64) ([]dto.StudentCourseProgress, error) {
	records, err := s.progress.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	completedByCourse := make(map[int64]int)
	order := make([]int64, 0)
	for _, r := range records {
		if _, seen := completedByCourse[r.CourseID]; !seen {
			order = append(order, r.CourseID)
		}
		completedByCourse[r.CourseID]++
	}

	entries := make([]dto.StudentCourseProgress, 0, len(order))
	for _, courseID := range order {
		course, err := s.courses.GetByID(ctx, courseID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				continue
			}
			return nil, err
		}

		total, err := s.chapters.CountByCourse(ctx, courseID)
		if err != nil {
			return nil, err
		}

		completed := completedByCourse[courseID]
		entries = append(entries, dto.StudentCourseProgress{
			Course: dto.CourseRef{
				ID:          course.ID,
				Title:       course.Title,
				Description: course.Description,
			},
			TotalChapters:        total,
			CompletedChapters:    completed,
			CompletionPercentage: completionPercentage(completed, total),
		})
	}

	return entries, nil
}

// CourseStudentsProgress reports every enrolled student's completion counts
// for a course. Only the owning mentor or an admin may call it.
func (s *ProgressService) CourseStudentsProgress(ctx context.Context, courseID, userID int64, role models.RoleType) (*dto.CourseStudentsProgressResponse, error) {
	course, err := s.authz.ValidateCourseOwner(ctx, courseID, userID, role)
	if err != nil {
		return nil, err
	}

	total, err := s.chapters.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	records, err := s.progress.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	completedByStudent := make(map[int64]int)
	for _, r := range records {
		completedByStudent[r.StudentID]++
	}

	students := make([]dto.EnrolledStudentProgress, 0, len(course.AssignedStudentIDs))
	for _, studentID := range course.AssignedStudentIDs {
		student, err := s.users.GetByID(ctx, studentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				continue
			}
			return nil, err
		}

		completed := completedByStudent[studentID]
		students = append(students, dto.EnrolledStudentProgress{
			ID:                   student.ID,
			FullName:             student.FullName,
			Email:                student.Email,
			CompletedChapters:    completed,
			TotalChapters:        total,
			CompletionPercentage: completionPercentage(completed, total),
		})
	}

	return &dto.CourseStudentsProgressResponse{
		Course: dto.CourseRef{
			ID:    course.ID,
			Title: course.Title,
		},
		TotalChapters: total,
		Students:      students,
	}, nil
}

func (s *ProgressService) completedSet(ctx context.Context, studentID, courseID int64) (map[int64]bool, error) {
	records, err := s.progress.ListByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool, len(records))
	for _, r := range records {
		set[r.ChapterID] = true
	}
	return set, nil
}

// completionPercentage rounds to the nearest whole percent; a course with no
// chapters is 0%, never 100%.
func completionPercentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
