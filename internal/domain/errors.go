package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search flow.
var (
	// ErrInvalidRequest is the only error surfaced to users (HTTP 400)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamUnavailable covers transport failures and timeouts
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamStatus is returned when the upstream answers with a non-2xx status
	ErrUpstreamStatus = errors.New("upstream returned an error status")

	// ErrAirportNotFound means a free-text location resolved to no airport
	ErrAirportNotFound = errors.New("airport not found")
)

// UpstreamError wraps a failure from the flight-search API with the operation that
// produced it and whether another attempt may succeed.
type UpstreamError struct {
	Op         string
	StatusCode int
	Err        error
	Retryable  bool
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a non-retryable upstream error.
func NewUpstreamError(op string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{Op: op, StatusCode: statusCode, Err: err}
}

// NewRetryableUpstreamError creates an upstream error that may succeed on retry.
func NewRetryableUpstreamError(op string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{Op: op, StatusCode: statusCode, Err: err, Retryable: true}
}

// IsRetryable reports whether another attempt may succeed. An error carrying an
// UpstreamError follows its Retryable flag; any other non-nil error is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Retryable
	}
	return true
}
