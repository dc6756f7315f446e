// Package envspec loads typed, validated configuration from environment variables.
//
// Each variable is declared once with a cast and zero or more validators. Load reads
// every declared variable, casts it and validates it, and fails on the first problem:
// either every field loads or no Environment is returned.
//
// Basic usage:
//
//	env, err := envspec.Load(envspec.Fields{
//	    "PORT":     envspec.Int(envspec.IsGreaterThan(0)),
//	    "DEBUG":    envspec.Bool().WithDefault("0"),
//	    "BASE_URL": envspec.String(envspec.URL, envspec.DoesEndWithSlash),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := envspec.Lookup[int](env, "PORT")
//
// # Descriptors
//
// A field descriptor is a Field built with String, Bool, Int, Custom and friends, or
// one of the short forms accepted by Normalize:
//
//   - nil                 - string, no validation
//   - a Cast function     - that cast, no validation
//   - Tuple{}             - string, no validation
//   - Tuple{cast}         - that cast, no validation
//   - Tuple{cast, v}      - v may be nil, a single validator or a []Validator
//
// Bool parses an integer, so "1" is true and "0" is false.
//
// # Validators
//
// A Validator rejects a cast value by returning an error. Plain functions are
// accepted through ValidatorFunc and Predicate. Stock validators cover booleans,
// trailing slashes, ordering (IsGreaterThan, IsLesserThan, IsEqualTo), length, and
// string formats (Email, Domain, URL, Format) backed by go-playground/validator.
//
// # Errors
//
// Failures can be inspected with errors.Is against ErrSpec, ErrMissingVariable,
// ErrCast, ErrValidation, ErrKeyNotFound and ErrInject. Errors returned by a Custom
// cast are passed through unchanged.
//
// # Injection
//
// Inject copies loaded values onto a Setter (such as a Namespace), a map[string]any,
// or a struct pointer:
//
//	var cfg struct {
//	    Port int `env:"PORT"`
//	}
//	err := env.Inject(&cfg)
package envspec
