// Package identifier generates random, URL-safe session identifiers.
//
// Identifiers are drawn from crypto/rand and encoded with unpadded base64url,
// so the alphabet is restricted to [A-Za-z0-9_-]. The default length of 16
// random bytes yields 128 bits of entropy and a 22-character token.
package identifier

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// DefaultByteLength is the number of random bytes used when none is given.
const DefaultByteLength = 16

var ErrGenerationFailed = errors.New("identifier.generation_failed")

// Generator produces a fresh identifier.
type Generator func() (string, error)

// Default is a Generator using DefaultByteLength.
func Default() (string, error) {
	return Generate(DefaultByteLength)
}

// Generate returns base64url(byteLength random bytes) without padding.
// A non-positive byteLength falls back to DefaultByteLength.
func Generate(byteLength int) (string, error) {
	return generate(rand.Reader, byteLength)
}

// FromReader returns a Generator that reads its bytes from src.
// Use it only with a cryptographically secure source.
func FromReader(src io.Reader, byteLength int) Generator {
	return func() (string, error) {
		return generate(src, byteLength)
	}
}

// WithLength returns a Generator producing byteLength-byte identifiers.
func WithLength(byteLength int) Generator {
	return func() (string, error) {
		return Generate(byteLength)
	}
}

// EncodedLen returns the token length for byteLength random bytes.
func EncodedLen(byteLength int) int {
	if byteLength <= 0 {
		byteLength = DefaultByteLength
	}
	return base64.RawURLEncoding.EncodedLen(byteLength)
}

func generate(src io.Reader, byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = DefaultByteLength
	}

	b := make([]byte, byteLength)
	if _, err := io.ReadFull(src, b); err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
