package apperrors

import "errors"

// Catalog errors
var (
	// Input errors
	ErrValidationFailed = errors.New("validation failed")

	// Collection errors
	ErrCapacityExceeded = errors.New("course list is full")
	ErrDuplicateCourse  = errors.New("course ID is duplicated")
	ErrCourseNotFound   = errors.New("course ID is not found")

	// Aggregate errors
	ErrEmptyCatalog  = errors.New("course list is empty")
	ErrDepartmentTie = errors.New("no single department has the most courses")
)

// Error codes attached to CustomError
const (
	CodeValidationFailed = "VAL_001"
	CodeCapacityExceeded = "CAP_001"
	CodeCourseNotFound   = "RES_001"
	CodeDuplicateCourse  = "RES_002"
	CodeEmptyCatalog     = "RES_004"
	CodeDepartmentTie    = "AGG_001"
)

// NewValidationError creates a new custom error for an invalid field with a message
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Code:    CodeValidationFailed,
	}
}

// NewCapacityError creates a new custom error for a full course list
func NewCapacityError(capacity int) *CustomError {
	return (&CustomError{
		Err:  ErrCapacityExceeded,
		Code: CodeCapacityExceeded,
	}).WithDetails(map[string]interface{}{"capacity": capacity})
}

// NewDuplicateError creates a new custom error for an ID collision
func NewDuplicateError(id string) *CustomError {
	return (&CustomError{
		Err:  ErrDuplicateCourse,
		Code: CodeDuplicateCourse,
	}).WithDetails(map[string]interface{}{"id": id})
}

// NewNotFoundError creates a new custom error for a missing course ID
func NewNotFoundError(id string) *CustomError {
	return (&CustomError{
		Err:  ErrCourseNotFound,
		Code: CodeCourseNotFound,
	}).WithDetails(map[string]interface{}{"id": id})
}

// Is returns whether target matches any of the errors in errList
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

// CodeOf returns the code of the first CustomError in err's chain, or "" if none.
func CodeOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
