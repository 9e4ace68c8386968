package signals

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Header names read by RequestEnvironment.
const (
	HeaderDoNotTrack         = "DNT"
	HeaderAcceptLanguage     = "Accept-Language"
	HeaderPlatformHint       = "Sec-CH-UA-Platform"
	HeaderDeviceMemoryHint   = "Sec-CH-Device-Memory"
	HeaderDeviceMemoryLegacy = "Device-Memory"
)

// HTTPEnvironment derives signals from request headers. Timezone, touch
// points, vendor, hardware concurrency and screen geometry are never sent as
// headers and are always unavailable here.
type HTTPEnvironment struct {
	Empty

	userAgent    string
	doNotTrack   string
	languages    []string
	platform     string
	deviceMemory float64
}

// RequestEnvironment reads the header-derived signals of r once.
func RequestEnvironment(r *http.Request) *HTTPEnvironment {
	env := &HTTPEnvironment{}
	if r == nil {
		return env
	}

	env.userAgent = strings.TrimSpace(r.UserAgent())
	env.doNotTrack = strings.TrimSpace(r.Header.Get(HeaderDoNotTrack))
	env.languages = ParseAcceptLanguage(r.Header.Get(HeaderAcceptLanguage))
	env.platform = unquoteHint(r.Header.Get(HeaderPlatformHint))

	mem := r.Header.Get(HeaderDeviceMemoryHint)
	if mem == "" {
		mem = r.Header.Get(HeaderDeviceMemoryLegacy)
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(mem), 64); err == nil && v > 0 {
		env.deviceMemory = v
	}

	return env
}

func (e *HTTPEnvironment) UserAgent() (string, bool) {
	return e.userAgent, e.userAgent != ""
}

func (e *HTTPEnvironment) DoNotTrack() (string, bool) {
	return e.doNotTrack, e.doNotTrack != ""
}

func (e *HTTPEnvironment) Language() (string, bool) {
	if len(e.languages) == 0 {
		return "", false
	}
	return e.languages[0], true
}

func (e *HTTPEnvironment) Languages() ([]string, bool) {
	return e.languages, len(e.languages) > 0
}

func (e *HTTPEnvironment) Platform() (string, bool) {
	return e.platform, e.platform != ""
}

func (e *HTTPEnvironment) DeviceMemory() (float64, bool) {
	return e.deviceMemory, e.deviceMemory > 0
}

// ParseAcceptLanguage returns canonical BCP 47 tags ordered by preference.
// Wildcards, zero-quality entries and unparsable input are dropped.
func ParseAcceptLanguage(header string) []string {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}

	tags, q, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for i, tag := range tags {
		if q[i] <= 0 || tag == language.Und {
			continue
		}
		s := tag.String()
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// unquoteHint strips the structured-header quotes from a client hint value.
func unquoteHint(v string) string {
	v = strings.TrimSpace(v)
	if s, err := strconv.Unquote(v); err == nil {
		return s
	}
	return strings.Trim(v, `"`)
}
