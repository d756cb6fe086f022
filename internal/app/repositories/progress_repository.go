package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	"github.com/skillpath/lms-backend/internal/pkg/dberrors"
)

// ProgressRepository handles database operations for completion records
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: db,
	}
}

const progressColumns = `id, student_id, course_id, chapter_id, completed_at`

func scanProgress(row pgx.Row) (*models.Progress, error) {
	var p models.Progress
	err := row.Scan(&p.ID, &p.StudentID, &p.CourseID, &p.ChapterID, &p.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts exactly one completion record. Two racing inserts for the
// same (student, chapter) pair both reach this statement; the loser hits
// uq_progress_student_chapter and gets the same denial the pre-check gives,
// so the race is indistinguishable from a sequential re-check.
func (r *ProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	query := `
		INSERT INTO progress (student_id, course_id, chapter_id)
		VALUES ($1, $2, $3)
		RETURNING id, completed_at
	`

	err := r.db.QueryRow(ctx, query,
		progress.StudentID, progress.CourseID, progress.ChapterID,
	).Scan(&progress.ID, &progress.CompletedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_progress_student_chapter") {
			return apperrors.ErrChapterAlreadyCompleted
		}
		return fmt.Errorf("error creating progress record: %w", err)
	}

	return nil
}

// Exists reports whether the student has completed the chapter
func (r *ProgressRepository) Exists(ctx context.Context, studentID, chapterID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM progress WHERE student_id = $1 AND chapter_id = $2)`,
		studentID, chapterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking progress existence: %w", err)
	}

	return exists, nil
}

// CountByStudentCourse counts a student's completed chapters in a course
func (r *ProgressRepository) CountByStudentCourse(ctx context.Context, studentID, courseID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM progress WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting progress: %w", err)
	}

	return count, nil
}

// ListByStudentCourse retrieves a student's completion records for a course
func (r *ProgressRepository) ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]*models.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE student_id = $1 AND course_id = $2`
	return r.list(ctx, query, studentID, courseID)
}

// ListByStudent retrieves all of a student's completion records, newest first
func (r *ProgressRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE student_id = $1 ORDER BY completed_at DESC`
	return r.list(ctx, query, studentID)
}

// ListByCourse retrieves every completion record in a course
func (r *ProgressRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE course_id = $1`
	return r.list(ctx, query, courseID)
}

// ListAll retrieves every completion record. Used by the analytics snapshots.
func (r *ProgressRepository) ListAll(ctx context.Context) ([]*models.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress`
	return r.list(ctx, query)
}

func (r *ProgressRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Progress, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
