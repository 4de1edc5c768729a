package apperror

import "fmt"

// AppError is the typed error carried across service boundaries so callers
// can tell "fix your data" from "fix your request" from "internal defect".
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    []string // structured detail list (e.g. precondition failures)
	Err        error    // wrapped cause, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without a wrapped cause.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches code/status metadata to an existing error.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails returns a copy carrying a structured error list.
func (e *AppError) WithDetails(details ...string) *AppError {
	clone := *e
	clone.Details = append([]string{}, details...)
	return &clone
}
