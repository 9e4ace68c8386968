package identity

import (
	"net/http"

	"github.com/dmitrymomot/sessiontag/pkg/logger"
	"github.com/dmitrymomot/sessiontag/pkg/sessionstore"
	"github.com/dmitrymomot/sessiontag/pkg/signals"
)

// Store binds a cookie store to the exchange using the resolver's cookie
// settings.
func (r *Resolver) Store(w http.ResponseWriter, req *http.Request) *sessionstore.CookieStore {
	return sessionstore.NewCookieStore(w, req,
		sessionstore.WithCookieManager(r.cookieMgr),
		sessionstore.WithTrustForwardedProto(r.trustForwardedProto),
	)
}

// ResolveRequest resolves the identity of an HTTP exchange. env overrides the
// signals found in the request; pass nil to use the request alone.
func (r *Resolver) ResolveRequest(w http.ResponseWriter, req *http.Request, env signals.Environment) (Identity, error) {
	return r.Resolve(req.Context(), r.Store(w, req), signals.Merge(env, signals.FromRequest(req)))
}

// Middleware resolves the identity for every request and adds it to the
// request context. Resolution errors are passed to the error handler.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id, err := r.ResolveRequest(w, req, nil)
		if err != nil {
			r.logger.ErrorContext(req.Context(), "session identity resolution failed", logger.Error(err))
			r.errorHandler(w, req, err)
			return
		}

		next.ServeHTTP(w, req.WithContext(WithIdentity(req.Context(), id)))
	})
}

// RequireIdentity rejects requests whose context carries no identity.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := FromContext(r.Context()); !ok || id.IsZero() {
			http.Error(w, "Session identity required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, "Session error", http.StatusInternalServerError)
}
