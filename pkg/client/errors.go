package client

import (
	"errors"
	"fmt"
)

// ErrMutationInFlight is returned when a write for the same resource and id
// is already awaiting its response. The caller should wait for the first
// write to settle instead of retrying.
var ErrMutationInFlight = errors.New("a mutation for this resource is already in flight")

// FieldError is one field-level validation failure reported by the server
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a modeled server outcome: the request reached the server and
// was answered with a non-success status. It is not retryable as-is; a 422
// needs corrected input and a 404 means the record no longer exists.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  []FieldError
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error %d: %d field(s) failed validation", e.Status, len(e.Fields))
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether the error is a 404
func (e *APIError) IsNotFound() bool { return e.Status == 404 }

// IsValidation reports whether the error is a 422
func (e *APIError) IsValidation() bool { return e.Status == 422 }

// TransportError is a network-level failure: the request may or may not have
// reached the server, so nothing can be assumed about server state and no
// cache invalidation happens. Generic and retryable from the UI's point of
// view, with the idempotency caveats of the operation involved.
type TransportError struct {
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error { return e.Err }
