// Package dto defines the response envelope shared by every resource
// endpoint. A caller can treat any resource's output identically: success
// responses carry data, validation failures carry a field error list, and
// everything else carries a generic error with no internal detail.
package dto

// Response represents a standard API response
type Response struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorInfo   `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// FieldError is one field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DeleteConfirmation is the minimal payload returned after a delete.
// Deleted data is never echoed back beyond its identifier.
type DeleteConfirmation struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// NewValidationErrorResponse creates a 422 response carrying the structured
// field failure list
func NewValidationErrorResponse(errors []FieldError) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    ErrCodeValidation,
			Message: "Validation failed",
		},
		Errors: errors,
	}
}

// Error code constants
const (
	// ErrCodeBadRequest is used for malformed requests (unparseable body, bad id)
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeNotFound is used when a resource is not found or not owned
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeValidation is used for field-level validation failures
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeInternal is used for unhandled store faults
	ErrCodeInternal = "ERR_INTERNAL"
)
