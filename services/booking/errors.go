package booking

import "fmt"

// ValidationError reports a request that fails domain validation before
// any write is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StateError reports a lifecycle action applied to a booking whose
// current status does not allow it.
type StateError struct {
	Action  string
	Current string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Action, e.Current)
}
