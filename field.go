package envspec

// Cast converts a raw value into its typed form. The raw value is the string
// read from the environment, or a default value of any type.
type Cast func(raw any) (any, error)

// Field describes how to obtain and validate one configuration value.
// Field is a value type; the modifier methods return a modified copy.
type Field struct {
	cast       Cast
	validators []Validator
	def        any
	hasDefault bool
}

// Tuple is the low-ceremony descriptor form accepted by Normalize:
// Tuple{}, Tuple{cast} or Tuple{cast, validators}.
type Tuple []any

// Fields maps environment variable names to field descriptors. A descriptor
// is a Field, a Cast, a Tuple, or nil.
type Fields map[string]any

// Custom returns a Field using an application-defined cast.
func Custom(cast Cast, validators ...Validator) Field {
	return Field{cast: cast, validators: validators}
}

// String returns a Field that keeps the raw value as is.
func String(validators ...Validator) Field {
	return Custom(StringCast, validators...)
}

// Bool returns a Field that parses an integer and reports whether it is non-zero.
func Bool(validators ...Validator) Field {
	return Custom(BoolCast, validators...)
}

// Int returns a Field that parses an int.
func Int(validators ...Validator) Field {
	return Custom(IntCast, validators...)
}

// Int64 returns a Field that parses an int64.
func Int64(validators ...Validator) Field {
	return Custom(Int64Cast, validators...)
}

// Float64 returns a Field that parses a float64.
func Float64(validators ...Validator) Field {
	return Custom(Float64Cast, validators...)
}

// Duration returns a Field that parses a time.Duration such as "30s".
func Duration(validators ...Validator) Field {
	return Custom(DurationCast, validators...)
}

// Strings returns a Field that splits a comma separated list.
func Strings(validators ...Validator) Field {
	return Custom(StringsCast, validators...)
}

// WithDefault returns a copy of f that falls back to raw when the variable is absent.
// The default goes through the cast like any environment value.
func (f Field) WithDefault(raw any) Field {
	f.def = raw
	f.hasDefault = true
	return f
}

// WithValidators returns a copy of f with vs appended to its validators.
func (f Field) WithValidators(vs ...Validator) Field {
	merged := make([]Validator, 0, len(f.validators)+len(vs))
	merged = append(merged, f.validators...)
	f.validators = append(merged, vs...)
	return f
}

// Cast returns the field's cast function.
func (f Field) Cast() Cast { return f.cast }

// Validators returns a copy of the field's validators in run order.
func (f Field) Validators() []Validator {
	return append([]Validator(nil), f.validators...)
}

// Default returns the field's default and whether one is set.
func (f Field) Default() (any, bool) { return f.def, f.hasDefault }
