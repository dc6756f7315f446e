package envspec

import (
	"io"
	"log/slog"
	"os"
)

// Option configures the loader.
type Option func(*options)

type options struct {
	providers []Provider
	defaults  map[string]any
	mapper    KeyMapper
	logger    *slog.Logger
	output    io.Writer
}

func newOptions(opts []Option) *options {
	o := &options{
		mapper: defaultMapper,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.providers) == 0 {
		o.providers = []Provider{Env()}
	}
	if o.logger == nil {
		o.logger = defaultLogger()
	}
	return o
}

// WithProvider adds a source of raw values. Providers added later take
// precedence over earlier ones. Without any provider the process
// environment is used.
func WithProvider(p Provider) Option {
	return func(o *options) {
		o.providers = append(o.providers, p)
	}
}

// WithDefaults sets fallback raw values used when a variable is absent.
// A value here takes precedence over a default declared on the Field.
func WithDefaults(defaults map[string]any) Option {
	return func(o *options) {
		if o.defaults == nil {
			o.defaults = make(map[string]any, len(defaults))
		}
		for k, v := range defaults {
			o.defaults[k] = v
		}
	}
}

// WithPrefix sets an environment variable prefix.
// Example: WithPrefix("APP") makes field "PORT" look for "APP_PORT" first,
// then "PORT". The value is stored as "PORT".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.mapper = newPrefixMapper(prefix)
	}
}

// WithKeyMapper sets a custom field name to lookup key mapping.
func WithKeyMapper(m KeyMapper) Option {
	return func(o *options) {
		if m != nil {
			o.mapper = m
		}
	}
}

// WithLogger sets the logger used for debug output during loading.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithOutput sets where Environment.Print writes to (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}
