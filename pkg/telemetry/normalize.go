package telemetry

// Normalize returns a copy with out-of-range values dropped and defaults
// filled in. The receiver is not modified.
func (r Report) Normalize() Report {
	if r.Network != nil {
		n := *r.Network
		r.Network = &n
		r.Network.normalize()
	}
	if r.Performance != nil {
		p := *r.Performance
		r.Performance = &p
		r.Performance.normalize()
	}
	return r
}

func (n *NetworkInfo) normalize() {
	if n.ConnectionType == "" {
		n.ConnectionType = UnknownConnection
	}
	if n.EffectiveType == "" {
		n.EffectiveType = UnknownConnection
	}
	n.Downlink = max(n.Downlink, 0)
	n.RTT = max(n.RTT, 0)
	n.LatencyMS = timing(n.LatencyMS, true)
}

func (p *PerformanceInfo) normalize() {
	p.LoadTimeMS = timing(p.LoadTimeMS, false)
	p.DOMContentLoadedMS = timing(p.DOMContentLoadedMS, false)
	p.FirstPaintMS = timing(p.FirstPaintMS, false)
	p.FirstContentfulPaintMS = timing(p.FirstContentfulPaintMS, false)

	if p.FPS != nil && *p.FPS <= 0 {
		p.FPS = nil
	}

	if m := p.Memory; m != nil {
		if m.UsedMB < 0 || m.TotalMB < 0 || m.LimitMB < 0 || (m.UsedMB == 0 && m.TotalMB == 0 && m.LimitMB == 0) {
			p.Memory = nil
		} else {
			mem := *m
			p.Memory = &mem
		}
	}
}

// timing keeps v when it lies in (0, MaxTimingMS); allowZero admits 0.
func timing(v *int, allowZero bool) *int {
	if v == nil {
		return nil
	}
	if *v >= MaxTimingMS || *v < 0 || (*v == 0 && !allowZero) {
		return nil
	}
	out := *v
	return &out
}
