// Package digest derives one-way hex digests used as session fingerprints.
//
// The digest is not a secret: its inputs are observable environment signals.
// It exists to differentiate sessions and to stay stable for identical input.
// There is no fallback to a weaker, non-cryptographic hash; a Digester that
// cannot compute a value must return an error.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Size is the length of a SHA-256 hex digest.
const Size = sha256.Size * 2

var ErrDigestUnavailable = errors.New("digest.unavailable")

// Digester hashes text input into a lowercase hex string.
type Digester interface {
	Digest(input string) (string, error)
}

// Func adapts a plain function to Digester.
type Func func(input string) (string, error)

func (f Func) Digest(input string) (string, error) {
	if f == nil {
		return "", ErrDigestUnavailable
	}
	return f(input)
}

// SHA256 hashes the UTF-8 bytes of the input.
type SHA256 struct{}

func (SHA256) Digest(input string) (string, error) {
	return SHA256Hex(input), nil
}

// SHA256Hex returns the 64-character lowercase hex SHA-256 of input.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// IsHex reports whether s looks like a SHA-256 hex digest.
func IsHex(s string) bool {
	if len(s) != Size {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
