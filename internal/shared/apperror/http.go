package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-facing shape of an AppError.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details []string
}

// ToHTTP maps any error to its HTTP representation, defaulting unknown
// errors to an opaque 500 so internal detail never leaks.
func ToHTTP(err error) HTTPError {
	var ae *AppError
	if errors.As(err, &ae) {
		return HTTPError{
			Status:  ae.HTTPStatus,
			Code:    ae.Code,
			Message: ae.Message,
			Details: ae.Details,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
