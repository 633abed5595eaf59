package location

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrLocationUnknown is returned when an operation needs the caller's
	// live location and none is stored.
	ErrLocationUnknown = errors.New("no live location for user")

	// ErrForbidden is returned when sharing consent does not permit the
	// viewer to see the requested location.
	ErrForbidden = errors.New("location not visible to viewer")
)

// ValidationError reports a rejected request field. It maps to a 400 on the
// REST surface and a validation error frame on the realtime channel.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a field validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
