package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the client was constructed without an API key
	ErrMissingAPIKey = errors.New("tmdb API key is required")
	// ErrInvalidEndpoint indicates an unknown movie list endpoint
	ErrInvalidEndpoint = errors.New("invalid movie list endpoint")
)

// APIError represents an error reported by TMDB itself in the response body.
// StatusCode is TMDB's own code (for example 7 for an invalid API key), not
// an HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb API error %d: %s", e.StatusCode, e.Message)
}

// IsInvalidKey checks if the error indicates a rejected API key
func (e *APIError) IsInvalidKey() bool {
	return e.StatusCode == 7
}

// IsNotFound checks if the error indicates a missing resource
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 34
}

// UnexpectedResponseError indicates a payload that matched neither the
// expected success shape nor the TMDB error envelope. The URL and raw
// payload are logged when this error is produced.
type UnexpectedResponseError struct {
	URL string
}

// Error implements the error interface
func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from %s", e.URL)
}

// errorEnvelope mirrors the body shape TMDB uses to report failures.
// Pointer fields distinguish a present field from a zero value.
type errorEnvelope struct {
	StatusCode    *int    `json:"status_code"`
	StatusMessage *string `json:"status_message"`
}

// classifyError returns the remote error when the payload carries the TMDB
// failure envelope, and nil otherwise. Checked before any success shape so
// that each payload is classified exactly once.
func classifyError(body []byte) *APIError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	if env.StatusCode == nil || env.StatusMessage == nil {
		return nil
	}
	return &APIError{StatusCode: *env.StatusCode, Message: *env.StatusMessage}
}
