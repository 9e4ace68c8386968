package identity

import (
	"github.com/dmitrymomot/sessiontag/pkg/sessionstore"
)

// Config holds resolver configuration
type Config struct {
	// IdentifierName is the entry (cookie) name of the session identifier
	IdentifierName string `env:"SESSION_ID_NAME" envDefault:"sid"`

	// FingerprintName is the entry (cookie) name of the fingerprint
	FingerprintName string `env:"SESSION_FP_NAME" envDefault:"sfp"`

	// IdentifierBytes is the number of random bytes per identifier (min 16)
	IdentifierBytes int `env:"SESSION_ID_BYTES" envDefault:"16"`

	Path     string `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	SameSite string `env:"SESSION_COOKIE_SAME_SITE" envDefault:"Lax"`

	// Secure requests the Secure attribute; it is only emitted over TLS
	Secure bool `env:"SESSION_COOKIE_SECURE" envDefault:"true"`

	// TrustForwardedProto honours X-Forwarded-Proto from a reverse proxy
	TrustForwardedProto bool `env:"SESSION_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// DefaultConfig returns default resolver configuration
func DefaultConfig() Config {
	return Config{
		IdentifierName:  DefaultIdentifierName,
		FingerprintName: DefaultFingerprintName,
		IdentifierBytes: 16,
		Path:            "/",
		SameSite:        string(sessionstore.SameSiteLax),
		Secure:          true,
	}
}

// EntryOptions converts the cookie settings into store entry options
func (c Config) EntryOptions() sessionstore.EntryOptions {
	return sessionstore.NewEntryOptions(
		sessionstore.WithPath(c.Path),
		sessionstore.WithSameSite(sessionstore.ParseSameSite(c.SameSite)),
		sessionstore.WithSecure(c.Secure),
	)
}

// NewFromConfig creates a new Resolver from the provided Config.
// Extra options are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) *Resolver {
	configOpts := []Option{
		WithEntryNames(cfg.IdentifierName, cfg.FingerprintName),
		WithEntryOptions(cfg.EntryOptions()),
		WithTrustForwardedProto(cfg.TrustForwardedProto),
	}
	if cfg.IdentifierBytes > 0 {
		configOpts = append(configOpts, WithIdentifierLength(cfg.IdentifierBytes))
	}

	configOpts = append(configOpts, opts...)

	return NewResolver(configOpts...)
}
