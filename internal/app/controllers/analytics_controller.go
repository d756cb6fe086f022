package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/app/services"
	"github.com/skillpath/lms-backend/internal/middleware"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
)

// AnalyticsController handles the admin reporting endpoints
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new analytics controller
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// Summary godoc
// @Summary Platform headline counters
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlatformSummary}
// @Failure 403 {object} dto.ErrorResponse
// @Router /analytics/summary [get]
func (ctrl *AnalyticsController) Summary(c *gin.Context) {
	summary, err := ctrl.analyticsService.Summary(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, summary)
}

// StudentsProgress godoc
// @Summary Per-student progress report
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Only students enrolled in this course"
// @Param progressStatus query string false "not-started, in-progress or completed"
// @Param completionLevel query string false "high, medium or low"
// @Success 200 {object} dto.APIResponse{data=dto.StudentsProgressResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /analytics/students/progress [get]
func (ctrl *AnalyticsController) StudentsProgress(c *gin.Context) {
	filter := dto.StudentProgressFilter{
		ProgressStatus:  c.Query("progressStatus"),
		CompletionLevel: c.Query("completionLevel"),
	}
	if raw := c.Query("courseId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			middleware.HandleValidationError(c,
				apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid courseId parameter"))
			return
		}
		filter.CourseID = id
	}

	report, err := ctrl.analyticsService.StudentsProgress(c, filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, report)
}

// MentorsActivity godoc
// @Summary Per-mentor activity report
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MentorsActivityResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /analytics/mentors/activity [get]
func (ctrl *AnalyticsController) MentorsActivity(c *gin.Context) {
	report, err := ctrl.analyticsService.MentorsActivity(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, report)
}
