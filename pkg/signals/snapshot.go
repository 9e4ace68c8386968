package signals

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Scheme names the field order below. Bump it if the order ever changes.
	Scheme = "v1"

	// Separator joins snapshot fields.
	Separator = "|"
)

var fieldNames = [...]string{
	"timezone",
	"doNotTrack",
	"maxTouchPoints",
	"language",
	"languages",
	"userAgent",
	"platform",
	"vendor",
	"hardwareConcurrency",
	"deviceMemory",
	"screen",
}

// Fields returns the snapshot field names in canonical order.
func Fields() []string {
	return fieldNames[:]
}

// Snapshot is one reading of all signals with defaults already applied.
type Snapshot struct {
	Timezone            string
	DoNotTrack          string
	MaxTouchPoints      int
	Language            string
	Languages           []string
	UserAgent           string
	Platform            string
	Vendor              string
	HardwareConcurrency int
	DeviceMemory        float64
	Screen              Screen
}

// Collect reads every signal from env. Unavailable signals get their default
// ("" or 0); a nil env yields an all-default snapshot.
func Collect(env Environment) Snapshot {
	if env == nil {
		env = Empty{}
	}

	var s Snapshot
	s.Timezone, _ = env.Timezone()
	s.DoNotTrack, _ = env.DoNotTrack()
	s.MaxTouchPoints, _ = env.MaxTouchPoints()
	s.Language, _ = env.Language()
	s.Languages, _ = env.Languages()
	s.UserAgent, _ = env.UserAgent()
	s.Platform, _ = env.Platform()
	s.Vendor, _ = env.Vendor()
	s.HardwareConcurrency, _ = env.HardwareConcurrency()
	s.DeviceMemory, _ = env.DeviceMemory()
	s.Screen, _ = env.Screen()
	return s
}

// String renders the canonical snapshot.
func (s Snapshot) String() string {
	parts := [len(fieldNames)]string{
		s.Timezone,
		s.DoNotTrack,
		strconv.Itoa(s.MaxTouchPoints),
		s.Language,
		strings.Join(s.Languages, ","),
		s.UserAgent,
		s.Platform,
		s.Vendor,
		strconv.Itoa(s.HardwareConcurrency),
		formatNumber(s.DeviceMemory),
		s.Screen.String(),
	}
	return strings.Join(parts[:], Separator)
}

// String renders the geometry as "WxHxAWxAHxCDxPD".
func (sc Screen) String() string {
	return strings.Join([]string{
		strconv.Itoa(sc.Width),
		strconv.Itoa(sc.Height),
		strconv.Itoa(sc.AvailWidth),
		strconv.Itoa(sc.AvailHeight),
		strconv.Itoa(sc.ColorDepth),
		strconv.Itoa(sc.PixelDepth),
	}, "x")
}

// formatNumber prints the shortest decimal form, e.g. 8 or 0.5.
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
