package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any failed backend call. Status is the HTTP status
// the backend answered with, or 0 when it could not be reached.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unavailable: %s", e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error onto a status code suitable for our own
// responses.
func (e *APIError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadGateway
	}
	return e.Status
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func unreachable(err error) *APIError {
	return &APIError{Status: 0, Message: err.Error(), Err: err}
}
