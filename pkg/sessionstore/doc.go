// Package sessionstore defines the persistence port used to keep the session
// identifier and fingerprint for the lifetime of a browsing session.
//
// A Store exposes two operations, ReadEntry and WriteEntry, over named string
// entries. Entries have no expiry: the port offers no way to set one, and the
// cookie-backed implementation writes session cookies that the browser drops
// when the session ends.
//
// # Implementations
//
//   - CookieStore – bound to a single HTTP exchange. Reads come from the
//     request Cookie header, writes go to Set-Cookie on the response. Writes are
//     visible to later reads within the same exchange.
//   - MemoryStore – concurrency-safe in-process map, useful for tests and for
//     non-browser callers that manage the session lifetime themselves.
//   - DisabledStore – persistence blocked by policy: every read is absent and
//     every write fails with ErrStoreUnavailable.
//
// # Error Handling
//
// Stores report failures through returned errors and never panic. Callers are
// expected to degrade: a failed read is treated as absent, a failed write as a
// no-op, so the next call simply produces fresh values.
package sessionstore
