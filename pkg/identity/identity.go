package identity

import (
	"github.com/dmitrymomot/sessiontag/pkg/digest"
)

// FingerprintSeparator joins the identifier and the signal snapshot.
const FingerprintSeparator = "::"

// Identity is the result of one resolution. It is rebuilt on every call and
// never persisted as a whole.
type Identity struct {
	Identifier  string `json:"identifier"`
	Fingerprint string `json:"fingerprint"`
	Signals     string `json:"signals"`

	// Set when the value was produced by this call rather than read back.
	IdentifierCreated  bool `json:"-"`
	FingerprintCreated bool `json:"-"`
}

// IsZero reports whether no identity was resolved.
func (i Identity) IsZero() bool {
	return i.Identifier == ""
}

// Derive computes the fingerprint for an identifier and a rendered snapshot.
func Derive(d digest.Digester, identifier, snapshot string) (string, error) {
	if d == nil {
		return "", digest.ErrDigestUnavailable
	}
	return d.Digest(identifier + FingerprintSeparator + snapshot)
}
