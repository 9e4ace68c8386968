package cookie

import (
	"net/http"
	"strings"
)

// Config holds cookie manager configuration
type Config struct {
	Path     string `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"true"`
	HttpOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"false"`
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:"Lax"`
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		Secure:   true,
		SameSite: "Lax",
	}
}

// ParseSameSite maps "Strict", "Lax" and "None" (case-insensitive) to the
// corresponding http.SameSite mode. Anything else yields SameSiteDefaultMode,
// which omits the attribute.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// Extra options are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	configOpts = append(configOpts,
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
	)
	if ss := ParseSameSite(cfg.SameSite); ss != http.SameSiteDefaultMode {
		configOpts = append(configOpts, WithSameSite(ss))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
