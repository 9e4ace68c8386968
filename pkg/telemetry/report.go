package telemetry

import "time"

// Timing bounds in milliseconds. Values outside (0, MaxTimingMS) are treated
// as unavailable.
const MaxTimingMS = 60000

// Connection type reported when the browser exposes none.
const UnknownConnection = "unknown"

// NetworkInfo describes connectivity as seen by the browser.
type NetworkInfo struct {
	Online         bool    `json:"online"`
	ConnectionType string  `json:"connectionType,omitempty"`
	EffectiveType  string  `json:"effectiveType,omitempty"`
	Downlink       float64 `json:"downlink,omitempty"`
	RTT            int     `json:"rtt,omitempty"`
	SaveData       bool    `json:"saveData,omitempty"`

	// LatencyMS is the round trip of a small probe request; nil when the
	// probe failed.
	LatencyMS *int `json:"latency,omitempty"`
}

// MemoryUsage is the JS heap usage in megabytes.
type MemoryUsage struct {
	UsedMB  int `json:"used"`
	TotalMB int `json:"total"`
	LimitMB int `json:"limit"`
}

// PerformanceInfo holds page timings in milliseconds. Nil means unavailable.
type PerformanceInfo struct {
	LoadTimeMS             *int         `json:"loadTime,omitempty"`
	DOMContentLoadedMS     *int         `json:"domContentLoaded,omitempty"`
	FirstPaintMS           *int         `json:"firstPaint,omitempty"`
	FirstContentfulPaintMS *int         `json:"firstContentfulPaint,omitempty"`
	Memory                 *MemoryUsage `json:"memoryUsage,omitempty"`
	FPS                    *int         `json:"fps,omitempty"`
}

// Payload is the body posted by the client.
type Payload struct {
	Network     *NetworkInfo     `json:"network,omitempty"`
	Performance *PerformanceInfo `json:"performance,omitempty"`
}

// Report is a payload bound to a session.
type Report struct {
	SessionID   string           `json:"sessionId"`
	Fingerprint string           `json:"fingerprint"`
	Network     *NetworkInfo     `json:"network,omitempty"`
	Performance *PerformanceInfo `json:"performance,omitempty"`
	ReceivedAt  time.Time        `json:"receivedAt"`
}

// NewReport binds p to a session and normalises it.
func NewReport(sessionID, fingerprint string, p Payload, receivedAt time.Time) Report {
	r := Report{
		SessionID:   sessionID,
		Fingerprint: fingerprint,
		Network:     p.Network,
		Performance: p.Performance,
		ReceivedAt:  receivedAt.UTC(),
	}
	return r.Normalize()
}

// Validate checks that the report is bound to a session.
func (r Report) Validate() error {
	if r.SessionID == "" {
		return ErrInvalidReport
	}
	return nil
}
