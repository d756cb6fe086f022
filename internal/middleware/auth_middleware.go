package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/models"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AccountGetter resolves accounts for the per-request account check
type AccountGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// JWTAuth validates the bearer token and stores the caller's identity on
// the request context
func JWTAuth(jwtService *pkgauth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := pkgauth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, models.RoleType(claims.Role))

		c.Next()
	}
}

// RequireActiveAccount re-reads the caller's account on every request so
// deactivation and mentor approval changes take effect before the 7-day
// token expires.
func RequireActiveAccount(accounts AccountGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.GetByID(c, GetUserID(c))
		if err != nil {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !user.IsActive {
			HandleAPIError(c, apperrors.ErrAccountDisabled)
			c.Abort()
			return
		}

		if user.RoleType == models.RoleMentor && !user.IsApproved {
			HandleAPIError(c, apperrors.ErrMentorNotApproved)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RoleRequired restricts a route group to the given roles. Admins pass
// every gate.
func RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetUserRole(c)
		if role == models.RoleAdmin {
			c.Next()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		HandleAPIError(c, apperrors.ErrPermissionDenied)
		c.Abort()
	}
}

// GetUserID returns the authenticated user's id from the request context
func GetUserID(c *gin.Context) int64 {
	if id, ok := c.Get(ContextUserID); ok {
		if userID, ok := id.(int64); ok {
			return userID
		}
	}
	return 0
}

// GetUserRole returns the authenticated user's role from the request context
func GetUserRole(c *gin.Context) models.RoleType {
	if r, ok := c.Get(ContextRole); ok {
		if role, ok := r.(models.RoleType); ok {
			return role
		}
	}
	return ""
}
