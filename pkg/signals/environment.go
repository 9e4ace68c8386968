package signals

// Screen is the screen geometry tuple.
type Screen struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	AvailWidth  int `json:"availWidth"`
	AvailHeight int `json:"availHeight"`
	ColorDepth  int `json:"colorDepth"`
	PixelDepth  int `json:"pixelDepth"`
}

// Environment exposes the ambient signals. Each accessor returns false when
// the signal is unavailable.
type Environment interface {
	Timezone() (string, bool)
	DoNotTrack() (string, bool)
	MaxTouchPoints() (int, bool)
	Language() (string, bool)
	Languages() ([]string, bool)
	UserAgent() (string, bool)
	Platform() (string, bool)
	Vendor() (string, bool)
	HardwareConcurrency() (int, bool)
	DeviceMemory() (float64, bool)
	Screen() (Screen, bool)
}

// Merge returns an Environment that reads each signal from primary and falls
// back to fallback when primary does not have it. Either may be nil.
func Merge(primary, fallback Environment) Environment {
	switch {
	case primary == nil && fallback == nil:
		return Empty{}
	case primary == nil:
		return fallback
	case fallback == nil:
		return primary
	}
	return merged{primary: primary, fallback: fallback}
}

type merged struct {
	primary, fallback Environment
}

func pick[T any](p, f func() (T, bool)) (T, bool) {
	if v, ok := p(); ok {
		return v, true
	}
	return f()
}

func (m merged) Timezone() (string, bool) { return pick(m.primary.Timezone, m.fallback.Timezone) }
func (m merged) DoNotTrack() (string, bool) {
	return pick(m.primary.DoNotTrack, m.fallback.DoNotTrack)
}
func (m merged) MaxTouchPoints() (int, bool) {
	return pick(m.primary.MaxTouchPoints, m.fallback.MaxTouchPoints)
}
func (m merged) Language() (string, bool) { return pick(m.primary.Language, m.fallback.Language) }
func (m merged) Languages() ([]string, bool) {
	return pick(m.primary.Languages, m.fallback.Languages)
}
func (m merged) UserAgent() (string, bool) { return pick(m.primary.UserAgent, m.fallback.UserAgent) }
func (m merged) Platform() (string, bool)  { return pick(m.primary.Platform, m.fallback.Platform) }
func (m merged) Vendor() (string, bool)    { return pick(m.primary.Vendor, m.fallback.Vendor) }
func (m merged) HardwareConcurrency() (int, bool) {
	return pick(m.primary.HardwareConcurrency, m.fallback.HardwareConcurrency)
}
func (m merged) DeviceMemory() (float64, bool) {
	return pick(m.primary.DeviceMemory, m.fallback.DeviceMemory)
}
func (m merged) Screen() (Screen, bool) { return pick(m.primary.Screen, m.fallback.Screen) }

// Empty is an Environment with every signal unavailable.
type Empty struct{}

func (Empty) Timezone() (string, bool)         { return "", false }
func (Empty) DoNotTrack() (string, bool)       { return "", false }
func (Empty) MaxTouchPoints() (int, bool)      { return 0, false }
func (Empty) Language() (string, bool)         { return "", false }
func (Empty) Languages() ([]string, bool)      { return nil, false }
func (Empty) UserAgent() (string, bool)        { return "", false }
func (Empty) Platform() (string, bool)         { return "", false }
func (Empty) Vendor() (string, bool)           { return "", false }
func (Empty) HardwareConcurrency() (int, bool) { return 0, false }
func (Empty) DeviceMemory() (float64, bool)    { return 0, false }
func (Empty) Screen() (Screen, bool)           { return Screen{}, false }
