package envspec

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	ErrSpec            = errors.New("invalid field descriptor")
	ErrMissingVariable = errors.New("missing environment variable")
	ErrCast            = errors.New("cast error")
	ErrValidation      = errors.New("validation failed")
	ErrKeyNotFound     = errors.New("key not found")
	ErrInject          = errors.New("injection failed")
)

// Error wraps configuration errors with context.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("envspec: %s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError reports a value rejected by a validator.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field == "" {
		return fmt.Sprintf("envspec: validation failed for %#v: %s", e.Value, msg)
	}
	return fmt.Sprintf("envspec: %s: validation failed for %#v: %s", e.Field, e.Value, msg)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func reject(value any, format string, args ...any) *ValidationError {
	return &ValidationError{Value: value, Reason: fmt.Sprintf(format, args...)}
}
