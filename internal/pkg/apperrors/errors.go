package apperrors

import "errors"

// Registration errors
var (
	ErrShapeInvalid          = errors.New("invalid registration payload")
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrCourseNotInDepartment = errors.New("course does not exist in the chosen department")
	ErrDuplicateStudent      = errors.New("student already registered")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid student ID or email")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
)

// Department errors
var (
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists")
	ErrDepartmentValidation    = errors.New("department validation failed")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this name already exists in the department")
	ErrCourseValidation    = errors.New("course validation failed")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Infrastructure errors. Both surface to callers as a generic 5xx; the
// distinction is whether the failure happened on the write path.
var (
	ErrPersistence        = errors.New("persistence failure")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
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

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewShapeError creates a shape-validation error carrying the violated field.
// The registration workflow reports the first violated field only.
func NewShapeError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrShapeInvalid,
		Message: message,
		Field:   field,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
