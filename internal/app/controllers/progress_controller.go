package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/services"
	"github.com/skillpath/lms-backend/internal/middleware"
)

// ProgressController handles chapter completion and progress endpoints
type ProgressController struct {
	progressService *services.ProgressService
}

// NewProgressController creates a new progress controller
func NewProgressController(progressService *services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// CompleteChapter godoc
// @Summary Mark a chapter as completed
// @Description Chapters must be completed in sequence order; skipping ahead is denied
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param chapterId path int true "Chapter ID"
// @Success 201 {object} dto.APIResponse{data=models.Progress}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /progress/{chapterId}/complete [post]
func (ctrl *ProgressController) CompleteChapter(c *gin.Context) {
	chapterID, err := parseIDParam(c, "chapterId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	record, err := ctrl.progressService.CompleteChapter(c, middleware.GetUserID(c), chapterID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, record)
}

// MyProgress godoc
// @Summary Summarize own progress across courses
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentCourseProgress}
// @Router /progress/my [get]
func (ctrl *ProgressController) MyProgress(c *gin.Context) {
	entries, err := ctrl.progressService.MyProgress(c, middleware.GetUserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, entries)
}

// CourseStatus godoc
// @Summary Get per-chapter completion and lock state for a course
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseProgressResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /progress/course/{courseId} [get]
func (ctrl *ProgressController) CourseStatus(c *gin.Context) {
	courseID, err := parseIDParam(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	status, err := ctrl.progressService.CourseStatus(c, courseID, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, status)
}

// CourseStudentsProgress godoc
// @Summary List every enrolled student's progress in a course
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseStudentsProgressResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /progress/course/{courseId}/students [get]
func (ctrl *ProgressController) CourseStudentsProgress(c *gin.Context) {
	courseID, err := parseIDParam(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := ctrl.progressService.CourseStudentsProgress(c, courseID, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, resp)
}
