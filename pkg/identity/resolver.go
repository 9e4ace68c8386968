package identity

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessiontag/pkg/cookie"
	"github.com/dmitrymomot/sessiontag/pkg/digest"
	"github.com/dmitrymomot/sessiontag/pkg/identifier"
	"github.com/dmitrymomot/sessiontag/pkg/logger"
	"github.com/dmitrymomot/sessiontag/pkg/sessionstore"
	"github.com/dmitrymomot/sessiontag/pkg/signals"
)

// Default entry names.
const (
	DefaultIdentifierName  = "sid"
	DefaultFingerprintName = "sfp"
)

// Resolver resolves the session identity over an injected store.
type Resolver struct {
	generator       identifier.Generator
	digester        digest.Digester
	entryOptions    sessionstore.EntryOptions
	identifierName  string
	fingerprintName string
	logger          *slog.Logger

	// HTTP integration
	cookieMgr           *cookie.Manager
	trustForwardedProto bool
	errorHandler        func(w http.ResponseWriter, r *http.Request, err error)
}

// NewResolver creates a resolver with crypto/rand identifiers, SHA-256
// fingerprints and Path=/, SameSite=Lax, Secure entries.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		generator:       identifier.Default,
		digester:        digest.SHA256{},
		entryOptions:    sessionstore.DefaultEntryOptions(),
		identifierName:  DefaultIdentifierName,
		fingerprintName: DefaultFingerprintName,
		logger:          slog.New(slog.DiscardHandler),
		errorHandler:    defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.cookieMgr == nil {
		r.cookieMgr = cookie.New()
	}

	return r
}

// EntryNames returns the identifier and fingerprint entry names.
func (r *Resolver) EntryNames() (identifierName, fingerprintName string) {
	return r.identifierName, r.fingerprintName
}

// Resolve returns the identity for the session held by store. A nil store
// behaves like persistence that is switched off.
func (r *Resolver) Resolve(ctx context.Context, store sessionstore.Store, env signals.Environment) (Identity, error) {
	if store == nil {
		store = sessionstore.DisabledStore{}
	}

	var id Identity

	sid, created, err := r.cacheOrCompute(ctx, store, r.identifierName, r.generator)
	if err != nil {
		return Identity{}, errors.Join(ErrIdentifierFailed, err)
	}
	id.Identifier, id.IdentifierCreated = sid, created

	id.Signals = signals.Collect(env).String()

	sfp, created, err := r.cacheOrCompute(ctx, store, r.fingerprintName, func() (string, error) {
		return Derive(r.digester, sid, id.Signals)
	})
	if err != nil {
		return Identity{}, errors.Join(ErrFingerprintFailed, err)
	}
	id.Fingerprint, id.FingerprintCreated = sfp, created

	if id.IdentifierCreated || id.FingerprintCreated {
		r.logger.DebugContext(ctx, "session identity initialised",
			logger.SessionID(id.Identifier),
			slog.Bool("identifier_created", id.IdentifierCreated),
			slog.Bool("fingerprint_created", id.FingerprintCreated),
		)
	}

	return id, nil
}

// cacheOrCompute returns the stored value of name, or computes, stores and
// returns a new one. The bool reports whether compute ran. Store failures are
// logged and tolerated; compute failures are returned.
func (r *Resolver) cacheOrCompute(ctx context.Context, store sessionstore.Store, name string, compute func() (string, error)) (string, bool, error) {
	value, err := store.ReadEntry(ctx, name)
	switch {
	case err == nil && value != "":
		return value, false, nil
	case err != nil && !errors.Is(err, sessionstore.ErrEntryNotFound):
		r.logger.WarnContext(ctx, "session entry read failed",
			logger.Entry(name),
			logger.Error(err),
		)
	}

	value, err = compute()
	if err != nil {
		return "", false, err
	}

	if err := store.WriteEntry(ctx, name, value, r.entryOptions); err != nil {
		r.logger.WarnContext(ctx, "session entry write failed",
			logger.Entry(name),
			logger.Error(err),
		)
	}

	return value, true, nil
}
