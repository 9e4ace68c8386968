// Package cookie writes and reads browser-session cookies.
//
// A session cookie carries no Expires or Max-Age attribute, so the browser
// discards it when the browsing session ends. The package never emits either
// attribute: there is no option for it. Values are written verbatim into the
// Set-Cookie header in a fixed attribute order so that the header is
// byte-for-byte predictable:
//
//	sid=<value>; Path=/; SameSite=Lax; Secure
//
// Cookies written here are meant to be readable by client-side scripts, so
// HttpOnly is off by default.
//
// # Usage
//
//	import "github.com/dmitrymomot/sessiontag/pkg/cookie"
//
//	m := cookie.New(cookie.WithSecure(true))
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    if _, err := m.Get(r, "sid"); errors.Is(err, cookie.ErrCookieNotFound) {
//	        _ = m.Set(w, "sid", "abc123")
//	    }
//	})
//
// # Configuration
//
// Config can be populated from environment variables via
// github.com/caarlos0/env and turned into a Manager with NewFromConfig.
//
// # Error Handling
//
// Get returns ErrCookieNotFound when the cookie is absent and
// ErrInvalidFormat when its value cannot be decoded. Set returns
// ErrInvalidName for names that are not valid cookie tokens.
package cookie
