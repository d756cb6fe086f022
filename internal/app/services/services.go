package services

import (
	"context"

	appauth "github.com/skillpath/lms-backend/internal/app/auth"
	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/repositories"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
)

// Store interfaces declare what each service needs from the persistence
// layer. The pgx repositories satisfy them; tests substitute in-memory fakes.

// UserStore is the persistence surface for user accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExistsExcept(ctx context.Context, email string, excludeID int64) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	SetApproval(ctx context.Context, id int64, approved bool) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	CountActiveStudents(ctx context.Context, ids []int64) (int, error)
}

// CourseStore is the persistence surface for courses and enrollments
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]*models.Course, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Course, error)
	ListAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) error
	ReplaceStudents(ctx context.Context, courseID int64, studentIDs []int64) error
}

// ChapterStore is the persistence surface for chapters
type ChapterStore interface {
	Create(ctx context.Context, chapter *models.Chapter) error
	GetByID(ctx context.Context, id int64) (*models.Chapter, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Chapter, error)
	ListAll(ctx context.Context) ([]*models.Chapter, error)
	CountByCourse(ctx context.Context, courseID int64) (int, error)
	Update(ctx context.Context, chapter *models.Chapter) error
	Delete(ctx context.Context, id int64) error
}

// ProgressStore is the persistence surface for completion records
type ProgressStore interface {
	Create(ctx context.Context, progress *models.Progress) error
	Exists(ctx context.Context, studentID, chapterID int64) (bool, error)
	CountByStudentCourse(ctx context.Context, studentID, courseID int64) (int, error)
	ListByStudentCourse(ctx context.Context, studentID, courseID int64) ([]*models.Progress, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Progress, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Progress, error)
	ListAll(ctx context.Context) ([]*models.Progress, error)
}

// CertificateStore is the persistence surface for certificates
type CertificateStore interface {
	Create(ctx context.Context, cert *models.Certificate) error
	GetByStudentCourse(ctx context.Context, studentID, courseID int64) (*models.Certificate, error)
	GetByNumber(ctx context.Context, number string) (*models.Certificate, error)
	ListAll(ctx context.Context) ([]*models.Certificate, error)
}

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	UserService        *UserService
	CourseService      *CourseService
	ChapterService     *ChapterService
	ProgressService    *ProgressService
	CertificateService *CertificateService
	AnalyticsService   *AnalyticsService
}

// NewServices initializes all services over the given repositories
func NewServices(repos *repositories.Repositories, jwtService *pkgauth.JWTService) *Services {
	authzService := appauth.NewAuthorizationService(repos.CourseRepository)

	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService),
		UserService: NewUserService(repos.UserRepository),
		CourseService: NewCourseService(
			repos.CourseRepository, repos.UserRepository, authzService),
		ChapterService: NewChapterService(
			repos.ChapterRepository, authzService),
		ProgressService: NewProgressService(
			repos.ProgressRepository, repos.ChapterRepository,
			repos.CourseRepository, repos.UserRepository, authzService),
		CertificateService: NewCertificateService(
			repos.CertificateRepository, repos.ProgressRepository,
			repos.ChapterRepository, repos.CourseRepository, repos.UserRepository),
		AnalyticsService: NewAnalyticsService(
			repos.UserRepository, repos.CourseRepository, repos.ChapterRepository,
			repos.ProgressRepository, repos.CertificateRepository),
	}
}
