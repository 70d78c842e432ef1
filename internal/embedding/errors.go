package embedding

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when text to embed is empty after trimming.
var ErrInvalidInput = errors.New("text to embed is empty")

// RateLimitError is returned after retries against a rate-limited API are
// exhausted.
type RateLimitError struct {
	Attempts int
	Err      error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("embedding API rate limit exceeded after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// APIError wraps any non-rate-limit failure from the embedding API.
// These are surfaced immediately and never retried.
type APIError struct {
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("embedding API error: %v", e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
