package identity

import "errors"

var (
	// ErrIdentifierFailed indicates a session identifier could not be generated
	ErrIdentifierFailed = errors.New("identity.identifier_failed")

	// ErrFingerprintFailed indicates the fingerprint digest could not be computed
	ErrFingerprintFailed = errors.New("identity.fingerprint_failed")

	// ErrNoIdentity indicates the context carries no resolved identity
	ErrNoIdentity = errors.New("identity.not_found")
)
