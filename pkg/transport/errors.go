package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrBaseURLRequired is returned by New without a service address.
	ErrBaseURLRequired = errors.New("transport: base URL is required")
	// ErrTimeout is returned when the service does not answer in time.
	ErrTimeout = errors.New("transport: request timed out")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("transport: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("transport: unexpected status %d: %s", e.StatusCode, e.Body)
}
