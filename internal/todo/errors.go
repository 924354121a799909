package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection is returned when an operation needs at least one task and the collection is empty.
	ErrEmptyCollection = errors.New("no tasks")
	// ErrIndexOutOfRange is returned when a positional selection does not address a task.
	ErrIndexOutOfRange = errors.New("task position out of range")
	// ErrAborted is returned by a Prompter when the user interrupts a prompt.
	ErrAborted = errors.New("prompt aborted")
)

// ValidationError reports user input that was rejected before any state changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func emptyDescriptionError() error {
	return &ValidationError{Field: "description", Reason: "empty description"}
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
