package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// Precondition fails a generation request before any computation runs.
func Precondition(message string, details ...string) *AppError {
	return New(CodePreconditionFailed, message, http.StatusUnprocessableEntity).WithDetails(details...)
}

// DataIntegrity aborts the generation of an entire file: partial or corrupt
// regulatory output is never acceptable.
func DataIntegrity(err error, message string) *AppError {
	return Wrap(err, CodeDataIntegrity, message, http.StatusConflict)
}

// Encoding marks content that cannot be represented in the requested
// encoding.
func Encoding(err error) *AppError {
	return Wrap(err, CodeEncodingError, "Content cannot be represented in the requested encoding", http.StatusBadRequest)
}

// RequiredField builds the standard missing-field validation error.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

// InvalidField builds the standard invalid-field validation error.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}
