package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CourseRepository      *CourseRepository
	ChapterRepository     *ChapterRepository
	ProgressRepository    *ProgressRepository
	CertificateRepository *CertificateRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CourseRepository:      NewCourseRepository(db),
		ChapterRepository:     NewChapterRepository(db),
		ProgressRepository:    NewProgressRepository(db),
		CertificateRepository: NewCertificateRepository(db),
	}
}
