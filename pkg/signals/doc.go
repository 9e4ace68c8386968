// Package signals collects low-entropy environment signals and renders them
// into the canonical snapshot string that feeds the session fingerprint.
//
// # Snapshot layout
//
// A snapshot is eleven fields joined with "|" in a fixed order:
//
//	timezone | doNotTrack | maxTouchPoints | language | languages |
//	userAgent | platform | vendor | hardwareConcurrency | deviceMemory | screen
//
// languages is a comma-separated list and screen is
// width x height x availWidth x availHeight x colorDepth x pixelDepth joined
// with "x". The order is part of the fingerprint contract (Scheme "v1"):
// reordering fields changes every fingerprint derived afterwards.
//
// # Environments
//
// Signals are read from an Environment. Every accessor reports whether the
// value is available; unavailable text signals render as "" and numeric ones
// as 0, so Collect never fails. Two implementations ship with the package:
//
//   - Descriptor – the values a browser client reads from navigator, screen
//     and Intl, decoded from JSON.
//   - RequestEnvironment – what can be inferred from request headers
//     (User-Agent, DNT, Accept-Language and client hints).
//
// Merge layers one Environment over another field by field.
package signals
