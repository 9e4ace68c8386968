package cookie

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
)

type Manager struct {
	defaults Options
}

// New returns a Manager with Path=/ and SameSite=Lax defaults.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		defaults: defaults.with(opts),
	}
}

// Defaults returns a copy of the options applied to every cookie.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Set writes a session cookie. The header never carries Expires or Max-Age.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if !validName(name) {
		return ErrInvalidName
	}

	options := m.defaults.with(opts)
	w.Header().Add("Set-Cookie", Format(name, value, options))
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}

	value, err := url.PathUnescape(c.Value)
	if err != nil {
		return "", errors.Join(ErrInvalidFormat, err)
	}
	return value, nil
}

// Format renders a Set-Cookie header value in a fixed attribute order:
// name=value; Path; Domain; SameSite; Secure; HttpOnly.
func Format(name, value string, o Options) string {
	var b strings.Builder
	b.Grow(len(name) + len(value) + 48)

	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(EscapeValue(value))

	if o.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(o.Path)
	}
	if o.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(o.Domain)
	}
	switch o.SameSite {
	case http.SameSiteStrictMode:
		b.WriteString("; SameSite=Strict")
	case http.SameSiteLaxMode:
		b.WriteString("; SameSite=Lax")
	case http.SameSiteNoneMode:
		b.WriteString("; SameSite=None")
	}
	if o.Secure {
		b.WriteString("; Secure")
	}
	if o.HttpOnly {
		b.WriteString("; HttpOnly")
	}

	return b.String()
}

// EscapeValue percent-encodes every byte outside A-Z a-z 0-9 and - _ . ! ~ * ' ( ),
// the same set a browser script would leave untouched with encodeURIComponent.
func EscapeValue(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	const hex = "0123456789ABCDEF"
	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', hex[c>>4], hex[c&0x0f])
	}
	return string(buf)
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// validName reports whether name is an RFC 6265 token.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= ' ' || c >= 0x7f {
			return false
		}
		if strings.IndexByte(`()<>@,;:\"/[]?={}`, c) >= 0 {
			return false
		}
	}
	return true
}
