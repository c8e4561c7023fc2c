package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoInput      = errors.New("no input source")
	ErrEmptyOutput  = errors.New("nothing to write")
	ErrIndexMissing = errors.New("index has not been built")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
