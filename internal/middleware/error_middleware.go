package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/models/dto"
	"github.com/skillpath/lms-backend/internal/pkg/apperrors"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Business denial
// reasons travel verbatim in the message field; only unexpected errors are
// hidden behind a generic message.
func HandleAPIError(c *gin.Context, err error) {
	status, code := classifyError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		message = "an unexpected error occurred"
	}

	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// HandleValidationError responds to request binding failures
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
}

func classifyError(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, pkgauth.ErrExpiredToken):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, pkgauth.ErrInvalidToken),
		errors.Is(err, pkgauth.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken

	case errors.Is(err, apperrors.ErrAccountDisabled),
		errors.Is(err, apperrors.ErrMentorNotApproved),
		errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrNotCourseOwner),
		errors.Is(err, apperrors.ErrNotEnrolled),
		errors.Is(err, apperrors.ErrChaptersOutOfSequence):
		return http.StatusForbidden, dto.ErrorCodeForbidden

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrChapterNotFound),
		errors.Is(err, apperrors.ErrCertificateNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists

	case errors.Is(err, apperrors.ErrChapterAlreadyCompleted),
		errors.Is(err, apperrors.ErrSequenceOrderTaken),
		errors.Is(err, apperrors.ErrCourseHasNoChapters),
		errors.Is(err, apperrors.ErrCertificateNotEarned),
		errors.Is(err, apperrors.ErrInvalidStudentIDs),
		errors.Is(err, apperrors.ErrNotAMentor),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeDenied

	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed
	}

	return http.StatusInternalServerError, dto.ErrorCodeInternalServer
}
