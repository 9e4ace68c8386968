package sessionstore

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/sessiontag/pkg/cookie"
)

// CookieStore implements Store over the cookies of one HTTP exchange.
type CookieStore struct {
	w                   http.ResponseWriter
	r                   *http.Request
	cookieMgr           *cookie.Manager
	trustForwardedProto bool
	written             map[string]string
}

// CookieStoreOption is a functional option for CookieStore
type CookieStoreOption func(*CookieStore)

// WithCookieManager sets the cookie manager used to read and write entries.
func WithCookieManager(m *cookie.Manager) CookieStoreOption {
	return func(s *CookieStore) {
		if m != nil {
			s.cookieMgr = m
		}
	}
}

// WithTrustForwardedProto treats "X-Forwarded-Proto: https" as encrypted
// transport. Enable only behind a proxy that sets the header.
func WithTrustForwardedProto(trust bool) CookieStoreOption {
	return func(s *CookieStore) {
		s.trustForwardedProto = trust
	}
}

// NewCookieStore binds a store to the given response and request.
func NewCookieStore(w http.ResponseWriter, r *http.Request, opts ...CookieStoreOption) *CookieStore {
	s := &CookieStore{
		w:       w,
		r:       r,
		written: make(map[string]string, 2),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cookieMgr == nil {
		s.cookieMgr = cookie.New()
	}

	return s
}

// ReadEntry returns the value written earlier in this exchange, otherwise the
// request cookie.
func (s *CookieStore) ReadEntry(ctx context.Context, name string) (string, error) {
	if v, ok := s.written[name]; ok {
		return v, nil
	}

	v, err := s.cookieMgr.Get(s.r, name)
	if err != nil {
		if errors.Is(err, cookie.ErrCookieNotFound) {
			return "", ErrEntryNotFound
		}
		return "", err
	}
	if v == "" {
		return "", ErrEntryNotFound
	}
	return v, nil
}

// WriteEntry emits a session cookie. Secure is appended only when the entry
// asks for it and the exchange is encrypted.
func (s *CookieStore) WriteEntry(ctx context.Context, name, value string, opts EntryOptions) error {
	cookieOpts := []cookie.Option{
		cookie.WithSameSite(cookie.ParseSameSite(string(opts.SameSite))),
		cookie.WithSecure(opts.Secure && s.SecureTransport()),
	}
	if opts.Path != "" {
		cookieOpts = append(cookieOpts, cookie.WithPath(opts.Path))
	}

	if err := s.cookieMgr.Set(s.w, name, value, cookieOpts...); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}

	s.written[name] = value
	return nil
}

// SecureTransport reports whether the exchange arrived over TLS.
func (s *CookieStore) SecureTransport() bool {
	if s.r == nil {
		return false
	}
	if s.r.TLS != nil {
		return true
	}
	if s.trustForwardedProto {
		return strings.EqualFold(strings.TrimSpace(s.r.Header.Get("X-Forwarded-Proto")), "https")
	}
	return false
}
