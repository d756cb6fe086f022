package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/db"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses and enrollments
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, title, description, mentor_id, is_active, created_at, updated_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.MentorID,
		&course.IsActive,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, description, mentor_id, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Title, course.Description, course.MentorID, course.IsActive,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	if course.AssignedStudentIDs == nil {
		course.AssignedStudentIDs = []int64{}
	}

	return nil
}

// GetByID retrieves a course with its enrolled student ids
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if err := r.attachStudentIDs(ctx, []*models.Course{course}); err != nil {
		return nil, err
	}

	return course, nil
}

// ListByMentor retrieves all courses owned by a mentor, newest first
func (r *CourseRepository) ListByMentor(ctx context.Context, mentorID int64) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE mentor_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, mentorID)
}

// ListByStudent retrieves all courses a student is enrolled in, newest first
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.title, c.description, c.mentor_id, c.is_active, c.created_at, c.updated_at
		FROM courses c
		JOIN course_students cs ON cs.course_id = c.id
		WHERE cs.student_id = $1
		ORDER BY c.created_at DESC
	`
	return r.list(ctx, query, studentID)
}

// ListAll retrieves every course, newest first
func (r *CourseRepository) ListAll(ctx context.Context) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *CourseRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachStudentIDs(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// attachStudentIDs loads enrollments for the given courses in one query
func (r *CourseRepository) attachStudentIDs(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Course, len(courses))
	ids := make([]int64, 0, len(courses))
	for _, course := range courses {
		course.AssignedStudentIDs = []int64{}
		byID[course.ID] = course
		ids = append(ids, course.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT course_id, student_id FROM course_students
		WHERE course_id = ANY($1)
		ORDER BY assigned_at`, ids)
	if err != nil {
		return fmt.Errorf("error loading enrollments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID, studentID int64
		if err := rows.Scan(&courseID, &studentID); err != nil {
			return err
		}
		if course, ok := byID[courseID]; ok {
			course.AssignedStudentIDs = append(course.AssignedStudentIDs, studentID)
		}
	}

	return rows.Err()
}

// Update persists title and description changes
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, course.Title, course.Description, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// SetActive updates the course active flag
func (r *CourseRepository) SetActive(ctx context.Context, id int64, active bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET is_active = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		active, id)
	if err != nil {
		return fmt.Errorf("error updating course active flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course. Chapters, enrollments and progress records go
// with it atomically through the ON DELETE CASCADE constraints, so readers
// never observe a chapter without its parent course.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// AssignStudents enrolls the given students, ignoring ones already enrolled
func (r *CourseRepository) AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, studentID := range studentIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO course_students (course_id, student_id)
				VALUES ($1, $2)
				ON CONFLICT (course_id, student_id) DO NOTHING`,
				courseID, studentID)
			if err != nil {
				return fmt.Errorf("error assigning student: %w", err)
			}
		}

		return touchCourse(ctx, tx, courseID)
	})
}

// ReplaceStudents swaps the full enrollment set of a course
func (r *CourseRepository) ReplaceStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM course_students WHERE course_id = $1`, courseID); err != nil {
			return fmt.Errorf("error clearing enrollments: %w", err)
		}

		for _, studentID := range studentIDs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO course_students (course_id, student_id) VALUES ($1, $2)`,
				courseID, studentID); err != nil {
				return fmt.Errorf("error assigning student: %w", err)
			}
		}

		return touchCourse(ctx, tx, courseID)
	})
}

func touchCourse(ctx context.Context, tx pgx.Tx, courseID int64) error {
	if _, err := tx.Exec(ctx,
		`UPDATE courses SET updated_at = CURRENT_TIMESTAMP WHERE id = $1`, courseID); err != nil {
		return fmt.Errorf("error touching course: %w", err)
	}
	return nil
}
