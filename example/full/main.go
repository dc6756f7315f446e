package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nicolasmmb/envspec"
)

type Config struct {
	Port           int           `env:"PORT"`
	Debug          bool          `env:"DEBUG"`
	BaseURL        string        `env:"BASE_URL"`
	AdminEmail     string        `env:"ADMIN_EMAIL"`
	Timeout        time.Duration `env:"TIMEOUT"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS"`
	JWTSecret      string        `env:"JWT_SECRET"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	env, err := envspec.Load(envspec.Fields{
		"PORT":            envspec.Tuple{envspec.IntCast, []envspec.Validator{envspec.IsGreaterThan(0), envspec.IsLesserThan(65536)}},
		"DEBUG":           envspec.Bool(),
		"BASE_URL":        envspec.String(envspec.URL, envspec.DoesEndWithSlash),
		"ADMIN_EMAIL":     envspec.Tuple{envspec.StringCast, envspec.Email},
		"TIMEOUT":         envspec.Duration(),
		"ALLOWED_ORIGINS": envspec.Strings(),
		"JWT_SECRET":      envspec.String(envspec.Length(16)),
	},
		envspec.WithPrefix("APP"),
		envspec.WithLogger(logger),
		envspec.WithDefaults(map[string]any{
			"DEBUG":           "0",
			"BASE_URL":        "http://localhost:8080/",
			"ADMIN_EMAIL":     "admin@example.com",
			"TIMEOUT":         "30s",
			"ALLOWED_ORIGINS": "http://localhost:3000",
		}),
	)
	if err != nil {
		switch {
		case errors.Is(err, envspec.ErrMissingVariable):
			fmt.Fprintln(os.Stderr, "missing configuration:", err)
		case errors.Is(err, envspec.ErrValidation):
			fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	env.Print()

	var cfg Config
	if err := env.Inject(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("\nServer starting on :%d (timeout %s, debug %t)\n", cfg.Port, cfg.Timeout, cfg.Debug)
}
