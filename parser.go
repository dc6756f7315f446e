package envspec

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// StringCast returns raw unchanged. Non-string defaults pass through uncast.
func StringCast(raw any) (any, error) {
	return raw, nil
}

// BoolCast parses raw as an integer and reports whether it is non-zero,
// so "1" is true and "0" is false.
func BoolCast(raw any) (any, error) {
	n, err := parseInt(raw, 64)
	if err != nil {
		return nil, castErr(raw, "bool", err)
	}
	return n != 0, nil
}

// IntCast parses raw as a base 10 int.
func IntCast(raw any) (any, error) {
	n, err := parseInt(raw, strconv.IntSize)
	if err != nil {
		return nil, castErr(raw, "int", err)
	}
	return int(n), nil
}

// Int64Cast parses raw as a base 10 int64.
func Int64Cast(raw any) (any, error) {
	n, err := parseInt(raw, 64)
	if err != nil {
		return nil, castErr(raw, "int64", err)
	}
	return n, nil
}

// parseInt reads strings as decimal, allowing surrounding whitespace.
// Non-string defaults go through cast.
func parseInt(raw any, bitSize int) (int64, error) {
	if s, ok := raw.(string); ok {
		return strconv.ParseInt(strings.TrimSpace(s), 10, bitSize)
	}
	return cast.ToInt64E(raw)
}

// Float64Cast parses raw as a float64.
func Float64Cast(raw any) (any, error) {
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil, castErr(raw, "float64", err)
	}
	return f, nil
}

// DurationCast parses raw as a time.Duration.
func DurationCast(raw any) (any, error) {
	d, err := cast.ToDurationE(raw)
	if err != nil {
		return nil, castErr(raw, "duration", err)
	}
	return d, nil
}

// StringsCast splits a comma separated string, honoring CSV quoting.
// Each element is trimmed.
func StringsCast(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		parts, err := cast.ToStringSliceE(raw)
		if err != nil {
			return nil, castErr(raw, "[]string", err)
		}
		return parts, nil
	}
	if s == "" {
		return []string{}, nil
	}

	parts, err := csv.NewReader(strings.NewReader(s)).Read()
	if err != nil {
		return nil, castErr(raw, "[]string", err)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func castErr(raw any, to string, err error) error {
	return fmt.Errorf("%w: cannot cast %#v to %s: %v", ErrCast, raw, to, err)
}

// Normalize resolves a raw descriptor into a Field:
//
//	nil                    -> String()
//	Field                  -> itself
//	Cast                   -> Custom(cast)
//	Tuple{}                -> String()
//	Tuple{cast}            -> Custom(cast)
//	Tuple{cast, nil}       -> Custom(cast)
//	Tuple{cast, v}         -> Custom(cast, v)
//	Tuple{cast, []vs}      -> Custom(cast, vs...)
//
// Any other shape fails with ErrSpec.
func Normalize(desc any) (Field, error) {
	switch d := desc.(type) {
	case nil:
		return String(), nil
	case Field:
		if d.cast == nil {
			return Field{}, fmt.Errorf("%w: missing cast", ErrSpec)
		}
		return d, nil
	case Tuple:
		return normalizeTuple(d)
	case []any:
		return normalizeTuple(Tuple(d))
	}

	c, err := toCast(desc)
	if err != nil {
		return Field{}, err
	}
	return Custom(c), nil
}

func normalizeTuple(t Tuple) (Field, error) {
	switch len(t) {
	case 0:
		return String(), nil
	case 1, 2:
	default:
		return Field{}, fmt.Errorf("%w: invalid tuple size %d", ErrSpec, len(t))
	}

	var f Field
	if base, ok := t[0].(Field); ok {
		if base.cast == nil {
			return Field{}, fmt.Errorf("%w: missing cast", ErrSpec)
		}
		f = base
	} else {
		c, err := toCast(t[0])
		if err != nil {
			return Field{}, err
		}
		f = Custom(c)
	}

	if len(t) == 1 {
		return f, nil
	}
	vs, err := normalizeValidators(t[1])
	if err != nil {
		return Field{}, err
	}
	return f.WithValidators(vs...), nil
}

func toCast(v any) (Cast, error) {
	switch c := v.(type) {
	case Cast:
		if c != nil {
			return c, nil
		}
	case func(any) (any, error):
		if c != nil {
			return c, nil
		}
	case func(string) (any, error):
		if c != nil {
			return func(raw any) (any, error) {
				s, err := cast.ToStringE(raw)
				if err != nil {
					return nil, castErr(raw, "string", err)
				}
				return c(s)
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid type %T", ErrSpec, v)
}

func normalizeValidators(v any) ([]Validator, error) {
	switch vs := v.(type) {
	case nil:
		return nil, nil
	case []Validator:
		return append([]Validator(nil), vs...), nil
	case []any:
		out := make([]Validator, 0, len(vs))
		for _, item := range vs {
			val, err := toValidator(item)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil
	}

	val, err := toValidator(v)
	if err != nil {
		return nil, err
	}
	return []Validator{val}, nil
}

func toValidator(v any) (Validator, error) {
	switch fn := v.(type) {
	case Validator:
		if fn != nil {
			return fn, nil
		}
	case func(any) error:
		if fn != nil {
			return ValidatorFunc(fn), nil
		}
	case func(any) bool:
		if fn != nil {
			return Predicate("predicate", fn), nil
		}
	}
	return nil, fmt.Errorf("%w: invalid validator type %T", ErrSpec, v)
}
