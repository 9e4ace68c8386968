package signals

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// HeaderClientSignals carries a base64url-encoded JSON Descriptor, letting a
// browser client attach its signals to any request.
const HeaderClientSignals = "X-Client-Signals"

// maxHeaderDescriptorSize bounds the decoded descriptor.
const maxHeaderDescriptorSize = 8 << 10

var ErrInvalidDescriptor = errors.New("signals.invalid_descriptor")

// EncodeDescriptor renders d for HeaderClientSignals.
func EncodeDescriptor(d *Descriptor) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", errors.Join(ErrInvalidDescriptor, err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeDescriptor parses a HeaderClientSignals value. Padded and unpadded
// base64url are both accepted.
func DecodeDescriptor(v string) (*Descriptor, error) {
	v = strings.TrimRight(strings.TrimSpace(v), "=")
	if v == "" {
		return nil, ErrInvalidDescriptor
	}
	if base64.RawURLEncoding.DecodedLen(len(v)) > maxHeaderDescriptorSize {
		return nil, ErrInvalidDescriptor
	}

	data, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil, errors.Join(ErrInvalidDescriptor, err)
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Join(ErrInvalidDescriptor, err)
	}
	return &d, nil
}

// DescriptorFromRequest decodes HeaderClientSignals from r. It returns nil
// when the header is absent or malformed; a bad header must not break
// collection.
func DescriptorFromRequest(r *http.Request) *Descriptor {
	if r == nil {
		return nil
	}
	v := r.Header.Get(HeaderClientSignals)
	if v == "" {
		return nil
	}
	d, err := DecodeDescriptor(v)
	if err != nil {
		return nil
	}
	return d
}

// FromRequest layers the client descriptor header, when present, over the
// header-derived environment.
func FromRequest(r *http.Request) Environment {
	if d := DescriptorFromRequest(r); d != nil {
		return Merge(d, RequestEnvironment(r))
	}
	return RequestEnvironment(r)
}
