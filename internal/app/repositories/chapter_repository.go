package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	"github.com/skillpath/lms-backend/internal/pkg/dberrors"
)

// ChapterRepository handles database operations for chapters
type ChapterRepository struct {
	db *pgxpool.Pool
}

// NewChapterRepository creates a new chapter repository
func NewChapterRepository(db *pgxpool.Pool) *ChapterRepository {
	return &ChapterRepository{
		db: db,
	}
}

const chapterColumns = `id, course_id, title, description, video_link, sequence_order, created_at`

func scanChapter(row pgx.Row) (*models.Chapter, error) {
	var chapter models.Chapter
	err := row.Scan(
		&chapter.ID,
		&chapter.CourseID,
		&chapter.Title,
		&chapter.Description,
		&chapter.VideoLink,
		&chapter.SequenceOrder,
		&chapter.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// Create inserts a new chapter. A sequence_order collision within the course
// surfaces as ErrSequenceOrderTaken.
func (r *ChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	query := `
		INSERT INTO chapters (course_id, title, description, video_link, sequence_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		chapter.CourseID, chapter.Title, chapter.Description, chapter.VideoLink, chapter.SequenceOrder,
	).Scan(&chapter.ID, &chapter.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_chapters_course_sequence") {
			return apperrors.ErrSequenceOrderTaken
		}
		return fmt.Errorf("error creating chapter: %w", err)
	}

	return nil
}

// GetByID retrieves a chapter by ID
func (r *ChapterRepository) GetByID(ctx context.Context, id int64) (*models.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE id = $1`

	chapter, err := scanChapter(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChapterNotFound
		}
		return nil, fmt.Errorf("error retrieving chapter: %w", err)
	}

	return chapter, nil
}

// ListByCourse retrieves a course's chapters ordered by sequence
func (r *ChapterRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE course_id = $1 ORDER BY sequence_order ASC`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*models.Chapter
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chapters, nil
}

// ListAll retrieves every chapter. Used by the analytics snapshots.
func (r *ChapterRepository) ListAll(ctx context.Context) ([]*models.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters ORDER BY course_id, sequence_order`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*models.Chapter
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chapters, nil
}

// CountByCourse counts the chapters of a course
func (r *ChapterRepository) CountByCourse(ctx context.Context, courseID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM chapters WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting chapters: %w", err)
	}

	return count, nil
}

// Update persists chapter changes, including sequence reordering
func (r *ChapterRepository) Update(ctx context.Context, chapter *models.Chapter) error {
	query := `
		UPDATE chapters
		SET title = $1, description = $2, video_link = $3, sequence_order = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		chapter.Title, chapter.Description, chapter.VideoLink, chapter.SequenceOrder, chapter.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_chapters_course_sequence") {
			return apperrors.ErrSequenceOrderTaken
		}
		return fmt.Errorf("error updating chapter: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChapterNotFound
	}

	return nil
}

// Delete removes a chapter; progress rows referencing it cascade away
func (r *ChapterRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM chapters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting chapter: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChapterNotFound
	}

	return nil
}
