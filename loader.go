package envspec

import (
	"errors"
	"slices"
)

// Load reads every field in fields from the configured providers, casts it and
// runs its validators. Fields are processed in name order. The first failure
// aborts the load and no Environment is returned.
//
// Descriptors are normalized before any variable is read, so a malformed
// descriptor fails with ErrSpec regardless of the environment.
func Load(fields Fields, opts ...Option) (*Environment, error) {
	o := newOptions(opts)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	specs := make([]Field, len(names))
	for i, name := range names {
		f, err := Normalize(fields[name])
		if err != nil {
			return nil, &Error{Field: name, Err: err}
		}
		specs[i] = f
	}

	env := newEnvironment(len(names), o.output)
	for i, name := range names {
		value, err := loadField(o, name, specs[i])
		if err != nil {
			return nil, err
		}
		env.values[name] = value
	}
	return env, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(fields Fields, opts ...Option) *Environment {
	env, err := Load(fields, opts...)
	if err != nil {
		panic(err)
	}
	return env
}

func loadField(o *options, name string, f Field) (any, error) {
	raw, err := resolve(o, name, f)
	if err != nil {
		return nil, err
	}

	value, err := f.cast(raw)
	if err != nil {
		// Application-defined cast errors are returned untouched.
		if errors.Is(err, ErrCast) {
			return nil, &Error{Field: name, Err: err}
		}
		return nil, err
	}

	for _, v := range f.validators {
		if err := v.Validate(value); err != nil {
			if errors.Is(err, ErrSpec) {
				return nil, &Error{Field: name, Err: err}
			}
			return nil, validationFailure(name, value, err)
		}
	}
	return value, nil
}

// resolve returns the raw value for a field: providers first, then the
// WithDefaults mapping, then the field's own default.
func resolve(o *options, name string, f Field) (any, error) {
	key := o.mapper.Key(name)
	if v, ok := lookupAll(o.providers, key); ok {
		logResolved(o.logger, name, key, "env")
		return v, nil
	}
	if key != name {
		if v, ok := lookupAll(o.providers, name); ok {
			logResolved(o.logger, name, name, "env")
			return v, nil
		}
	}

	if v, ok := o.defaults[name]; ok {
		logResolved(o.logger, name, key, "default")
		return v, nil
	}
	if v, ok := f.Default(); ok {
		logResolved(o.logger, name, key, "default")
		return v, nil
	}
	return nil, &Error{Field: name, Err: ErrMissingVariable}
}

// validationFailure attaches the field name. A *ValidationError wrapped by
// the validator keeps the wrapping error as Err.
func validationFailure(name string, value any, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		out := *ve
		if out.Field == "" {
			out.Field = name
		}
		if err != ve {
			out.Err = err
		}
		return &out
	}
	return &ValidationError{Field: name, Value: value, Err: err}
}
