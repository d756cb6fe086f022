package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/lms-backend/internal/app/models"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
)

func authTestRouter(jwtService *pkgauth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", JWTAuth(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	return router
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey: "test-secret", AccessTokenExp: time.Hour,
	})
	token, _, err := jwtService.GenerateToken(&models.User{
		ID: 42, Email: "sam@skillpath.io", RoleType: models.RoleStudent,
	})
	require.NoError(t, err)

	router := authTestRouter(jwtService)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey: "test-secret", AccessTokenExp: time.Hour,
	})

	otherService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey: "other-secret", AccessTokenExp: time.Hour,
	})
	foreign, _, err := otherService.GenerateToken(&models.User{
		ID: 42, Email: "sam@skillpath.io", RoleType: models.RoleStudent,
	})
	require.NoError(t, err)

	expiredService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey: "test-secret", AccessTokenExp: -time.Minute,
	})
	expired, _, err := expiredService.GenerateToken(&models.User{
		ID: 42, Email: "sam@skillpath.io", RoleType: models.RoleStudent,
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed token", "Bearer not.a.token"},
		{"wrong signing key", "Bearer " + foreign},
		{"expired token", "Bearer " + expired},
	}

	router := authTestRouter(jwtService)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// every rejected session is a 401, never a server error
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotContains(t, w.Body.String(), "unexpected error")
		})
	}
}
