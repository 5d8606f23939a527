package models

import "fmt"

// ValidationError reports a field that failed construction or mutation
// validation. Values are never silently clamped into range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
