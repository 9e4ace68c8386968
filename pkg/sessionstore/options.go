package sessionstore

import "strings"

// SameSite is the cross-site sending policy of an entry.
type SameSite string

const (
	SameSiteStrict SameSite = "Strict"
	SameSiteLax    SameSite = "Lax"
	SameSiteNone   SameSite = "None"
)

// ParseSameSite accepts "Strict", "Lax" or "None" in any case.
// Unknown values fall back to Lax.
func ParseSameSite(s string) SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return SameSiteStrict
	case "none":
		return SameSiteNone
	default:
		return SameSiteLax
	}
}

// EntryOptions controls how an entry is scoped. There is intentionally no
// expiry setting.
type EntryOptions struct {
	// Path restricts which request paths receive the entry.
	Path string
	// SameSite is the cross-site sending policy.
	SameSite SameSite
	// Secure restricts the entry to encrypted transport. Stores only honour it
	// when the current exchange is itself encrypted.
	Secure bool
}

// EntryOption mutates EntryOptions.
type EntryOption func(*EntryOptions)

func WithPath(path string) EntryOption {
	return func(o *EntryOptions) {
		if path != "" {
			o.Path = path
		}
	}
}

func WithSameSite(sameSite SameSite) EntryOption {
	return func(o *EntryOptions) {
		if sameSite != "" {
			o.SameSite = sameSite
		}
	}
}

func WithSecure(secure bool) EntryOption {
	return func(o *EntryOptions) {
		o.Secure = secure
	}
}

// DefaultEntryOptions returns Path=/, SameSite=Lax, Secure=true.
func DefaultEntryOptions() EntryOptions {
	return EntryOptions{
		Path:     "/",
		SameSite: SameSiteLax,
		Secure:   true,
	}
}

// NewEntryOptions applies opts on top of DefaultEntryOptions.
func NewEntryOptions(opts ...EntryOption) EntryOptions {
	o := DefaultEntryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
