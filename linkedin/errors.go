package linkedin

import (
	"errors"
	"fmt"
)

// Common errors returned by the LinkScout client.
var (
	// ErrMissingAPIKey indicates the client was constructed without a credential.
	ErrMissingAPIKey = errors.New("linkscout API key is required")

	// ErrMissingIdentifier indicates a call omitted every identifier of a
	// required either/or parameter group. No request was sent.
	ErrMissingIdentifier = errors.New("missing required identifier")
)

// HTTPError represents a non-success response from the LinkScout API.
// Responses in the 4xx range are surfaced immediately; 5xx responses are
// surfaced only after all retries are exhausted.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("linkscout API error: status %d %s", e.StatusCode, e.Status)
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates request throttling
func (e *HTTPError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// TimeoutError indicates every attempt of a call exceeded the configured
// per-attempt timeout.
type TimeoutError struct {
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %d attempts", e.Attempts)
}

// NetworkError indicates a transport-level failure (DNS, connection reset,
// unreadable or unparseable body) rather than an HTTP-level one.
type NetworkError struct {
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error after %d attempts: %v", e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
