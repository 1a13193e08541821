package api

import (
	"errors"
	"fmt"
)

// Failure kinds for a single endpoint attempt. Callers classify with
// errors.Is; field-level extraction misses never surface here, they degrade
// to nil fields inside the parsers.
var (
	// ErrNetwork covers transport failures: DNS, connection resets, timeouts.
	ErrNetwork = errors.New("network error")
	// ErrHTTPStatus covers non-2xx responses.
	ErrHTTPStatus = errors.New("http status error")
	// ErrParse covers malformed top-level payloads (invalid JSON/XML root,
	// missing mandatory envelope).
	ErrParse = errors.New("parse error")
)

func networkError(endpoint string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrNetwork, endpoint, err)
}

func statusError(endpoint string, status int) error {
	return fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, endpoint, status)
}

func parseError(detail string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, detail, err)
	}
	return fmt.Errorf("%w: %s", ErrParse, detail)
}

// RetriesExhaustedError aggregates the failures of a whole fetch operation
// once every attempt round has been spent.
type RetriesExhaustedError struct {
	Attempts int
	Last     error
}

// Error implements the error interface.
func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("weather fetch failed after %d attempts: %v", e.Attempts, e.Last)
}

// Unwrap exposes the last underlying failure.
func (e *RetriesExhaustedError) Unwrap() error {
	return e.Last
}
