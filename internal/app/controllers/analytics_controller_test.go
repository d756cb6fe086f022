package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStudentsProgressRejectsBadCourseID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewAnalyticsController(nil)

	router := gin.New()
	router.GET("/analytics/students/progress", ctrl.StudentsProgress)

	for _, raw := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/analytics/students/progress?courseId="+raw, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "courseId")
	}
}
