package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// ErrNotFound covers both true absence and ownership mismatch. The two
// cases are deliberately indistinguishable so a caller cannot probe for
// records owned by someone else.
var ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
