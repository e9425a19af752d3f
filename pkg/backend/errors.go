package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable wraps transport failures: refused connections, DNS errors, timeouts.
	ErrUnreachable = errors.New("backend unreachable")
	// ErrMissingCredentials is returned before any call when the token or base URL is empty.
	ErrMissingCredentials = errors.New("missing backend credentials")
	// ErrUnexpectedPayload is returned when a 2xx body has an unknown shape.
	ErrUnexpectedPayload = errors.New("unexpected backend payload")
)

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	StatusCode int
	// Message is the server supplied error text, if any.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// StatusCode extracts the HTTP status of a StatusError, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
