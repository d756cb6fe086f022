package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/app/services"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController        *AuthController
	UserController        *UserController
	CourseController      *CourseController
	ChapterController     *ChapterController
	ProgressController    *ProgressController
	CertificateController *CertificateController
	AnalyticsController   *AnalyticsController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:        NewAuthController(svcs.AuthService),
		UserController:        NewUserController(svcs.UserService),
		CourseController:      NewCourseController(svcs.CourseService),
		ChapterController:     NewChapterController(svcs.ChapterService),
		ProgressController:    NewProgressController(svcs.ProgressService),
		CertificateController: NewCertificateController(svcs.CertificateService),
		AnalyticsController:   NewAnalyticsController(svcs.AnalyticsService),
	}
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid "+name+" parameter")
	}
	return id, nil
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "ok"})
}
