package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/app/services"
	"github.com/skillpath/lms-backend/internal/middleware"
)

// ChapterController handles chapter authoring endpoints
type ChapterController struct {
	chapterService *services.ChapterService
}

// NewChapterController creates a new chapter controller
func NewChapterController(chapterService *services.ChapterService) *ChapterController {
	return &ChapterController{
		chapterService: chapterService,
	}
}

// CreateChapter godoc
// @Summary Add a chapter to a course
// @Description The sequence order must be unused within the course
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CreateChapterRequest true "Chapter details"
// @Success 201 {object} dto.APIResponse{data=models.Chapter}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/chapters [post]
func (ctrl *ChapterController) CreateChapter(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	chapter, err := ctrl.chapterService.CreateChapter(c, courseID, middleware.GetUserID(c), middleware.GetUserRole(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, chapter)
}

// ListChapters godoc
// @Summary List a course's chapters in sequence order
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Chapter}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/chapters [get]
func (ctrl *ChapterController) ListChapters(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	chapters, err := ctrl.chapterService.ListChapters(c, courseID, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, chapters)
}

// GetChapter godoc
// @Summary Get a chapter
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=models.Chapter}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chapters/{id} [get]
func (ctrl *ChapterController) GetChapter(c *gin.Context) {
	chapterID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	chapter, err := ctrl.chapterService.GetChapter(c, chapterID, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, chapter)
}

// UpdateChapter godoc
// @Summary Update a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Param request body dto.UpdateChapterRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Chapter}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chapters/{id} [put]
func (ctrl *ChapterController) UpdateChapter(c *gin.Context) {
	chapterID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	chapter, err := ctrl.chapterService.UpdateChapter(c, chapterID, middleware.GetUserID(c), middleware.GetUserRole(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, chapter)
}

// DeleteChapter godoc
// @Summary Delete a chapter
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chapters/{id} [delete]
func (ctrl *ChapterController) DeleteChapter(c *gin.Context) {
	chapterID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.chapterService.DeleteChapter(c, chapterID, middleware.GetUserID(c), middleware.GetUserRole(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.SuccessResponse{Message: "chapter deleted"})
}
