package envspec

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Environment holds the cast and validated values produced by Load,
// keyed by field name. It is not safe for concurrent mutation.
type Environment struct {
	values map[string]any
	output io.Writer
}

func newEnvironment(size int, output io.Writer) *Environment {
	return &Environment{
		values: make(map[string]any, size),
		output: output,
	}
}

// Get returns the value stored under name.
func (e *Environment) Get(name string) (any, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Value returns the value stored under name, or nil.
func (e *Environment) Value(name string) any {
	return e.values[name]
}

// Keys returns the stored names in sorted order.
func (e *Environment) Keys() []string {
	return slices.Sorted(maps.Keys(e.values))
}

// Len returns the number of stored values.
func (e *Environment) Len() int { return len(e.values) }

// Map returns a copy of the stored values.
func (e *Environment) Map() map[string]any {
	return maps.Clone(e.values)
}

// Rename moves the value stored under oldName to newName, replacing any
// value already stored there.
func (e *Environment) Rename(oldName, newName string) error {
	v, ok := e.values[oldName]
	if !ok {
		return &Error{Field: oldName, Err: ErrKeyNotFound}
	}
	delete(e.values, oldName)
	e.values[newName] = v
	return nil
}

// Lookup returns the value stored under name as a T.
func Lookup[T any](e *Environment, name string) (T, error) {
	var zero T
	v, ok := e.values[name]
	if !ok {
		return zero, &Error{Field: name, Err: ErrKeyNotFound}
	}
	t, ok := v.(T)
	if !ok {
		return zero, &Error{Field: name, Err: fmt.Errorf("%w: value is %T, not %T", ErrCast, v, zero)}
	}
	return t, nil
}
