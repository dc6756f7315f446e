package envspec

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(value any) error

// Validate calls f(value).
func (f ValidatorFunc) Validate(value any) error { return f(value) }

// Predicate returns a Validator that rejects value when fn returns false.
func Predicate(name string, fn func(value any) bool) Validator {
	return ValidatorFunc(func(value any) error {
		if !fn(value) {
			return reject(value, "%s check failed", name)
		}
		return nil
	})
}

// Stock predicate validators.
var (
	IsTrue = Predicate("is_true", func(v any) bool {
		b, ok := v.(bool)
		return ok && b
	})
	IsFalse = Predicate("is_false", func(v any) bool {
		b, ok := v.(bool)
		return ok && !b
	})
	DoesEndWithSlash = Predicate("does_end_with_slash", func(v any) bool {
		s, ok := v.(string)
		return ok && strings.HasSuffix(s, "/")
	})
	DoesNotEndWithSlash = Predicate("does_not_end_with_slash", func(v any) bool {
		s, ok := v.(string)
		return ok && !strings.HasSuffix(s, "/")
	})
)

// IsGreaterThan rejects values that are not a T greater than n.
func IsGreaterThan[T cmp.Ordered](n T) Validator {
	return compareValidator(n, "greater than", func(c int) bool { return c > 0 })
}

// IsLesserThan rejects values that are not a T less than n.
func IsLesserThan[T cmp.Ordered](n T) Validator {
	return compareValidator(n, "less than", func(c int) bool { return c < 0 })
}

func compareValidator[T cmp.Ordered](n T, op string, ok func(int) bool) Validator {
	return ValidatorFunc(func(value any) error {
		v, isT := value.(T)
		if !isT {
			return reject(value, "expected %T, got %T", n, value)
		}
		if !ok(cmp.Compare(v, n)) {
			return reject(value, "must be %s %v", op, n)
		}
		return nil
	})
}

// IsEqualTo rejects values that are not a T equal to n.
func IsEqualTo[T comparable](n T) Validator {
	return ValidatorFunc(func(value any) error {
		v, isT := value.(T)
		if !isT {
			return reject(value, "expected %T, got %T", n, value)
		}
		if v != n {
			return reject(value, "must be equal to %v", n)
		}
		return nil
	})
}

// Length rejects strings shorter than min runes.
func Length(min int) Validator {
	return LengthBetween(min, -1)
}

// LengthBetween rejects strings whose rune count is outside [min, max].
// A negative max means no upper bound.
func LengthBetween(min, max int) Validator {
	return ValidatorFunc(func(value any) error {
		s, ok := value.(string)
		if !ok {
			return reject(value, "expected string, got %T", value)
		}
		n := utf8.RuneCountInString(s)
		if n < min {
			return reject(value, "length %d is less than %d", n, min)
		}
		if max >= 0 && n > max {
			return reject(value, "length %d is greater than %d", n, max)
		}
		return nil
	})
}

var (
	formatOnce     sync.Once
	formatValidate *validator.Validate
)

func formats() *validator.Validate {
	formatOnce.Do(func() {
		formatValidate = validator.New()
	})
	return formatValidate
}

// Format returns a Validator that checks a string against a
// go-playground/validator tag such as "ip", "uuid" or "hostname_port".
// An unknown tag fails with ErrSpec.
func Format(tag string) Validator {
	return ValidatorFunc(func(value any) error {
		s, ok := value.(string)
		if !ok {
			return reject(value, "expected string, got %T", value)
		}
		if err := checkFormat(s, tag); err != nil {
			if errors.Is(err, ErrSpec) {
				return err
			}
			return &ValidationError{Value: value, Reason: fmt.Sprintf("not a valid %s", tag), Err: err}
		}
		return nil
	})
}

// checkFormat turns the panic go-playground/validator raises for an
// undefined tag into an ErrSpec error.
func checkFormat(s, tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: unknown format %q: %v", ErrSpec, tag, r)
		}
	}()
	return formats().Var(s, tag)
}

// Stock format validators.
var (
	Email  = Format("email")
	Domain = Format("fqdn")
	URL    = Format("url")
)
