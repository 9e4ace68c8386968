package identity

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessiontag/pkg/cookie"
	"github.com/dmitrymomot/sessiontag/pkg/digest"
	"github.com/dmitrymomot/sessiontag/pkg/identifier"
	"github.com/dmitrymomot/sessiontag/pkg/sessionstore"
)

// Option is a functional option for configuring the Resolver
type Option func(*Resolver)

// WithGenerator sets the identifier generator
func WithGenerator(g identifier.Generator) Option {
	return func(r *Resolver) {
		if g != nil {
			r.generator = g
		}
	}
}

// WithIdentifierLength sets the number of random bytes per identifier.
// Values below identifier.DefaultByteLength are raised to it.
func WithIdentifierLength(byteLength int) Option {
	return func(r *Resolver) {
		r.generator = identifier.WithLength(max(byteLength, identifier.DefaultByteLength))
	}
}

// WithDigester sets the fingerprint digester
func WithDigester(d digest.Digester) Option {
	return func(r *Resolver) {
		if d != nil {
			r.digester = d
		}
	}
}

// WithEntryOptions sets path, same-site and secure settings for both entries
func WithEntryOptions(opts sessionstore.EntryOptions) Option {
	return func(r *Resolver) {
		if opts.Path == "" {
			opts.Path = "/"
		}
		if opts.SameSite == "" {
			opts.SameSite = sessionstore.SameSiteLax
		}
		r.entryOptions = opts
	}
}

// WithEntryNames overrides the "sid" and "sfp" entry names
func WithEntryNames(identifierName, fingerprintName string) Option {
	return func(r *Resolver) {
		if identifierName != "" {
			r.identifierName = identifierName
		}
		if fingerprintName != "" {
			r.fingerprintName = fingerprintName
		}
	}
}

// WithLogger sets the logger used for best-effort persistence failures
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCookieManager sets the cookie manager used by the HTTP integration
func WithCookieManager(m *cookie.Manager) Option {
	return func(r *Resolver) {
		if m != nil {
			r.cookieMgr = m
		}
	}
}

// WithTrustForwardedProto lets the HTTP integration treat
// "X-Forwarded-Proto: https" as encrypted transport
func WithTrustForwardedProto(trust bool) Option {
	return func(r *Resolver) {
		r.trustForwardedProto = trust
	}
}

// WithErrorHandler sets the response written by Middleware when resolution fails
func WithErrorHandler(h func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(r *Resolver) {
		if h != nil {
			r.errorHandler = h
		}
	}
}
