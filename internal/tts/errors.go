package tts

import (
	"context"
	"fmt"
	"time"
)

// StatusError is returned when an upstream provider answers with a non-success status.
type StatusError struct {
	Provider   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
}

// EmptyResponseError is returned when an upstream provider answers successfully
// with no audio.
type EmptyResponseError struct {
	Provider string
}

func (e *EmptyResponseError) Error() string {
	return "Empty response from " + e.Provider
}

// TimeoutError is returned when the upstream call does not complete within the
// configured timeout.
type TimeoutError struct {
	Provider string
	After    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s request timed out after %s", e.Provider, e.After)
}

func (e *TimeoutError) Unwrap() error { return context.DeadlineExceeded }
