package identity

import (
	"context"
	"log/slog"
)

type identityContextKey struct{}

// WithIdentity adds an identity to the context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// FromContext retrieves the identity from the context
func FromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}

// MustFromContext retrieves the identity from the context or panics
func MustFromContext(ctx context.Context) Identity {
	id, ok := FromContext(ctx)
	if !ok {
		panic("identity: not found in context")
	}
	return id
}

// LoggerExtractor returns a logger.ContextExtractor adding the session
// identifier to every record logged with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := FromContext(ctx); ok && !id.IsZero() {
			return slog.String("session_id", id.Identifier), true
		}
		return slog.Attr{}, false
	}
}
