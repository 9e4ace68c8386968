// Package identity resolves the per-browser-session identifier and the
// fingerprint derived from it.
//
// A Resolver combines four collaborators:
//
//   - a sessionstore.Store holding two session-scoped entries, "sid" and "sfp";
//   - an identifier.Generator for fresh identifiers;
//   - a signals.Environment describing the client;
//   - a digest.Digester turning "sid::signals" into the fingerprint.
//
// # Resolution
//
// Resolve applies the same cache-or-compute policy to both entries:
//
//  1. read "sid"; when absent generate one and write it;
//  2. collect the signal snapshot (always fresh, never cached);
//  3. read "sfp"; when absent derive digest(sid + "::" + snapshot) and write
//     it, otherwise reuse the stored value verbatim;
//  4. return Identity{Identifier, Fingerprint, Signals}.
//
// The first call of a session performs two writes and one digest; every later
// call performs none. A stored fingerprint is never recomputed, even when the
// freshly collected signals differ from the ones it was derived from.
//
// Persistence is best-effort. Read failures count as absent and write failures
// are logged and ignored, so a session whose store is unavailable simply gets
// new values on every call. Identifier generation and digest failures are
// returned to the caller.
//
// Concurrent first requests of one browsing session are not coordinated; the
// last Set-Cookie wins and the values converge on the next request.
//
// # HTTP
//
// Middleware resolves the identity over request cookies for every request
// and stores it in the context (FromContext). Handler serves the identity as
// JSON and accepts a client signals.Descriptor on POST.
//
//	resolver := identity.NewResolver(identity.WithLogger(log))
//	r := chi.NewRouter()
//	r.Method(http.MethodPost, "/identity", resolver.Handler())
//	r.With(resolver.Middleware).Get("/", home)
package identity
