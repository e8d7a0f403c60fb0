package course

import "errors"

var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrCourseNotFound   = errors.New("course not found")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError is returned at the editing boundary when a rubric or
// activity cannot be saved.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }
