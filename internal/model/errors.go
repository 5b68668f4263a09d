package model

import "fmt"

// ValidationError reports a missing or unusable input field. An operation
// that returns one has mutated no state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}
