package logger

import (
	"log/slog"
	"strings"
)

// Config holds logger configuration
type Config struct {
	Service string `env:"APP_NAME" envDefault:"sessiond"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	// Level overrides the environment default when set (debug, info, warn, error)
	Level string `env:"LOG_LEVEL"`

	// Format overrides the environment default when set (json, text)
	Format string `env:"LOG_FORMAT"`
}

// ParseLevel converts a level name into a slog.Level.
// Unknown names resolve to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NewFromConfig creates a logger from the provided Config.
// Extra options are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		configOpts = append(configOpts, WithLevel(ParseLevel(cfg.Level)))
	}
	if cfg.Format != "" {
		configOpts = append(configOpts, WithFormat(Format(strings.ToLower(cfg.Format))))
	}

	return New(append(configOpts, opts...)...)
}
