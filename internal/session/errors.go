package session

import "fmt"

// ValidationError reports a required free-text field that was blank.
// The dependent action is blocked; nothing else happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func blank(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
