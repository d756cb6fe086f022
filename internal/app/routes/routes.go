package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/skillpath/lms-backend/internal/app/controllers"
	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/app/repositories"
	"github.com/skillpath/lms-backend/internal/config"
	"github.com/skillpath/lms-backend/internal/middleware"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
)

// SetupRoutes registers the full API surface under /api/v1.
// Role gates are declared here; ownership and enrollment checks live in the
// services so a mentor can never touch another mentor's course even though
// both carry the MENTOR role.
func SetupRoutes(engine *gin.Engine, ctrls *controllers.Controllers, repos *repositories.Repositories, jwtService *pkgauth.JWTService, cfg *config.Config) {
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := engine.Group("/api/v1")

	v1.GET("/health", controllers.Health)

	// Public endpoints
	v1.POST("/auth/register", ctrls.AuthController.Register)
	v1.POST("/auth/login", ctrls.AuthController.Login)
	v1.GET("/certificates/verify/:certificateNumber", ctrls.CertificateController.VerifyCertificate)

	authed := v1.Group("")
	authed.Use(
		middleware.JWTAuth(jwtService),
		middleware.RequireActiveAccount(repos.UserRepository),
	)

	authed.GET("/auth/profile", ctrls.AuthController.Profile)

	users := authed.Group("/users")
	{
		users.GET("/students",
			middleware.RoleRequired(models.RoleAdmin, models.RoleMentor),
			ctrls.UserController.ListStudents)

		admin := users.Group("", middleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("", ctrls.UserController.ListUsers)
			admin.PUT("/:id", ctrls.UserController.UpdateUser)
			admin.PUT("/:id/approve-mentor", ctrls.UserController.ApproveMentor)
			admin.PUT("/:id/activate", ctrls.UserController.ActivateUser)
			admin.DELETE("/:id", ctrls.UserController.DeleteUser)
		}
	}

	courses := authed.Group("/courses")
	{
		courses.POST("",
			middleware.RoleRequired(models.RoleMentor),
			ctrls.CourseController.CreateCourse)
		courses.GET("/my", ctrls.CourseController.MyCourses)
		courses.GET("/:id", ctrls.CourseController.GetCourse)
		courses.PUT("/:id",
			middleware.RoleRequired(models.RoleMentor),
			ctrls.CourseController.UpdateCourse)
		courses.DELETE("/:id",
			middleware.RoleRequired(models.RoleMentor),
			ctrls.CourseController.DeleteCourse)

		courses.POST("/:id/assign",
			middleware.RoleRequired(models.RoleMentor),
			ctrls.CourseController.AssignStudents)
		courses.PUT("/:id/assign",
			middleware.RoleRequired(models.RoleAdmin),
			ctrls.CourseController.ReplaceStudents)
		courses.PUT("/:id/activate",
			middleware.RoleRequired(models.RoleAdmin),
			ctrls.CourseController.ActivateCourse)

		courses.POST("/:id/chapters",
			middleware.RoleRequired(models.RoleMentor),
			ctrls.ChapterController.CreateChapter)
		courses.GET("/:id/chapters", ctrls.ChapterController.ListChapters)
	}

	chapters := authed.Group("/chapters")
	{
		chapters.GET("/:id", ctrls.ChapterController.GetChapter)
		chapters.PUT("/:id",
			middleware.RoleRequired(models.RoleMentor),
			ctrls.ChapterController.UpdateChapter)
		chapters.DELETE("/:id",
			middleware.RoleRequired(models.RoleMentor),
			ctrls.ChapterController.DeleteChapter)
	}

	progress := authed.Group("/progress")
	{
		progress.POST("/:chapterId/complete",
			middleware.RoleRequired(models.RoleStudent),
			ctrls.ProgressController.CompleteChapter)
		progress.GET("/my",
			middleware.RoleRequired(models.RoleStudent),
			ctrls.ProgressController.MyProgress)
		progress.GET("/course/:courseId", ctrls.ProgressController.CourseStatus)
		progress.GET("/course/:courseId/students",
			middleware.RoleRequired(models.RoleMentor, models.RoleAdmin),
			ctrls.ProgressController.CourseStudentsProgress)
	}

	certificates := authed.Group("/certificates")
	{
		certificates.GET("/:courseId",
			middleware.RoleRequired(models.RoleStudent),
			ctrls.CertificateController.GetCertificate)
	}

	analytics := authed.Group("/analytics", middleware.RoleRequired(models.RoleAdmin))
	{
		analytics.GET("/summary", ctrls.AnalyticsController.Summary)
		analytics.GET("/students/progress", ctrls.AnalyticsController.StudentsProgress)
		analytics.GET("/mentors/activity", ctrls.AnalyticsController.MentorsActivity)
	}
}
