package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus matches any *StatusError.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrMalformedResponse is returned when a 200 response body is empty or not the expected JSON.
	ErrMalformedResponse = errors.New("malformed API response")
	// ErrEmptyToken is returned when authentication succeeds without handing out a token.
	ErrEmptyToken = errors.New("API returned an empty token")
)

// StatusError reports a non-200 API response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, truncate(e.Body, 200))
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// TransportError wraps failures below HTTP: DNS, TLS, refused connections,
// timeouts and context cancellation.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
