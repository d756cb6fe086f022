package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/app/services"
	"github.com/skillpath/lms-backend/internal/middleware"
)

// CourseController handles course and enrollment endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new course controller
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course details"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 403 {object} dto.ErrorResponse
// @Router /courses [post]
func (ctrl *CourseController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	course, err := ctrl.courseService.CreateCourse(c, middleware.GetUserID(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, course)
}

// MyCourses godoc
// @Summary List own courses
// @Description Mentors see courses they own, students courses they are enrolled in, admins all courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses/my [get]
func (ctrl *CourseController) MyCourses(c *gin.Context) {
	courses, err := ctrl.courseService.MyCourses(c, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, courses)
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (ctrl *CourseController) GetCourse(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	course, err := ctrl.courseService.GetCourse(c, courseID, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [put]
func (ctrl *CourseController) UpdateCourse(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	course, err := ctrl.courseService.UpdateCourse(c, courseID, middleware.GetUserID(c), middleware.GetUserRole(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Deletes the course together with its chapters, enrollments and progress records
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (ctrl *CourseController) DeleteCourse(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.courseService.DeleteCourse(c, courseID, middleware.GetUserID(c), middleware.GetUserRole(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.SuccessResponse{Message: "course deleted"})
}

// AssignStudents godoc
// @Summary Enroll students into a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.AssignStudentsRequest true "Student ids"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /courses/{id}/assign [post]
func (ctrl *CourseController) AssignStudents(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.AssignStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	course, err := ctrl.courseService.AssignStudents(c, courseID, middleware.GetUserID(c), middleware.GetUserRole(c), req.StudentIDs)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, course)
}

// ReplaceStudents godoc
// @Summary Replace a course's enrollment set
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.AssignStudentsRequest true "Student ids"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/assign [put]
func (ctrl *CourseController) ReplaceStudents(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.AssignStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	course, err := ctrl.courseService.ReplaceStudents(c, courseID, req.StudentIDs)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, course)
}

// ActivateCourse godoc
// @Summary Activate or deactivate a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.ActivateCourseRequest true "Active flag"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/activate [put]
func (ctrl *CourseController) ActivateCourse(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ActivateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	course, err := ctrl.courseService.SetCourseActive(c, courseID, *req.IsActive)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, course)
}
