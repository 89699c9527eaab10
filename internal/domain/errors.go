package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInsufficientStock indicates an order asks for more units than are left.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError reports bad client input. Its message is shown to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
