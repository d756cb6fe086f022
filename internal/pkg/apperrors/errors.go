package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is deactivated")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrMentorNotApproved  = errors.New("mentor account pending approval from admin")
	ErrNotAMentor         = errors.New("user is not a mentor")
)

// Course and chapter errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrChapterNotFound     = errors.New("chapter not found")
	ErrNotCourseOwner      = errors.New("you are not the owner of this course")
	ErrNotEnrolled         = errors.New("you are not enrolled in this course")
	ErrSequenceOrderTaken  = errors.New("a chapter with this sequence order already exists for this course")
	ErrInvalidStudentIDs   = errors.New("some student IDs are invalid or inactive")
	ErrCourseHasNoChapters = errors.New("course has no chapters yet")
)

// Progress and certificate errors
var (
	ErrChapterAlreadyCompleted = errors.New("chapter already completed")
	ErrChaptersOutOfSequence   = errors.New("you must complete previous chapters in sequence before completing this chapter")
	ErrCertificateNotFound     = errors.New("certificate not found")
	ErrCertificateNotEarned    = errors.New("certificate available only after 100% completion")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewForbiddenError creates a permission denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
