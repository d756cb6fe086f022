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

// CertificateRepository handles database operations for certificates
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
	}
}

const certificateColumns = `id, student_id, course_id, certificate_number, issued_at`

func scanCertificate(row pgx.Row) (*models.Certificate, error) {
	var cert models.Certificate
	err := row.Scan(&cert.ID, &cert.StudentID, &cert.CourseID, &cert.CertificateNumber, &cert.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// Create inserts a certificate. A second writer for the same (student,
// course) pair hits uq_certificates_student_course and gets
// ErrResourceAlreadyExists; callers re-read the winner instead.
func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	query := `
		INSERT INTO certificates (student_id, course_id, certificate_number)
		VALUES ($1, $2, $3)
		RETURNING id, issued_at
	`

	err := r.db.QueryRow(ctx, query,
		cert.StudentID, cert.CourseID, cert.CertificateNumber,
	).Scan(&cert.ID, &cert.IssuedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_certificates_student_course") {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating certificate: %w", err)
	}

	return nil
}

// GetByStudentCourse retrieves the certificate for a student/course pair
func (r *CertificateRepository) GetByStudentCourse(ctx context.Context, studentID, courseID int64) (*models.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE student_id = $1 AND course_id = $2`

	cert, err := scanCertificate(r.db.QueryRow(ctx, query, studentID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("error retrieving certificate: %w", err)
	}

	return cert, nil
}

// GetByNumber retrieves a certificate by its public number
func (r *CertificateRepository) GetByNumber(ctx context.Context, number string) (*models.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE certificate_number = $1`

	cert, err := scanCertificate(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("error retrieving certificate by number: %w", err)
	}

	return cert, nil
}

// ListAll retrieves every certificate. Used by the analytics snapshots.
func (r *CertificateRepository) ListAll(ctx context.Context) ([]*models.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []*models.Certificate
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certs, nil
}
