package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
)

// User errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrProfessorNotFound  = errors.New("professor not found")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Score errors
var (
	ErrScoresNotFound = errors.New("no scores available for this course")
	ErrStorageFailure = errors.New("storage failure")
)

// CustomError carries a user-facing message alongside a sentinel error. The
// request boundary picks the HTTP status from the sentinel and the payload
// text from the message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewStorageError wraps an unexpected persistence or parsing failure. The
// underlying error text is passed through to the caller.
func NewStorageError(err error) error {
	return &CustomError{Err: ErrStorageFailure, Message: err.Error()}
}
