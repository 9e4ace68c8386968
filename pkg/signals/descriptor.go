package signals

// Descriptor is the signal set reported by a browser client. Every field is
// optional; zero and empty values count as unavailable.
type Descriptor struct {
	Timezone            *string           `json:"timezone,omitempty"`
	DoNotTrack          *string           `json:"doNotTrack,omitempty"`
	MaxTouchPoints      *int              `json:"maxTouchPoints,omitempty"`
	Language            *string           `json:"language,omitempty"`
	Languages           []string          `json:"languages,omitempty"`
	UserAgent           *string           `json:"userAgent,omitempty"`
	Platform            *string           `json:"platform,omitempty"`
	Vendor              *string           `json:"vendor,omitempty"`
	HardwareConcurrency *int              `json:"hardwareConcurrency,omitempty"`
	DeviceMemory        *float64          `json:"deviceMemory,omitempty"`
	Screen              *ScreenDescriptor `json:"screen,omitempty"`
}

// ScreenDescriptor is the client-reported screen geometry.
type ScreenDescriptor struct {
	Width       *int `json:"width,omitempty"`
	Height      *int `json:"height,omitempty"`
	AvailWidth  *int `json:"availWidth,omitempty"`
	AvailHeight *int `json:"availHeight,omitempty"`
	ColorDepth  *int `json:"colorDepth,omitempty"`
	PixelDepth  *int `json:"pixelDepth,omitempty"`
}

func text(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}

func integer(p *int) (int, bool) {
	if p == nil || *p == 0 {
		return 0, false
	}
	return *p, true
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func (d *Descriptor) Timezone() (string, bool) {
	if d == nil {
		return "", false
	}
	return text(d.Timezone)
}

func (d *Descriptor) DoNotTrack() (string, bool) {
	if d == nil {
		return "", false
	}
	return text(d.DoNotTrack)
}

func (d *Descriptor) MaxTouchPoints() (int, bool) {
	if d == nil {
		return 0, false
	}
	return integer(d.MaxTouchPoints)
}

func (d *Descriptor) Language() (string, bool) {
	if d == nil {
		return "", false
	}
	return text(d.Language)
}

func (d *Descriptor) Languages() ([]string, bool) {
	if d == nil || len(d.Languages) == 0 {
		return nil, false
	}
	return d.Languages, true
}

func (d *Descriptor) UserAgent() (string, bool) {
	if d == nil {
		return "", false
	}
	return text(d.UserAgent)
}

func (d *Descriptor) Platform() (string, bool) {
	if d == nil {
		return "", false
	}
	return text(d.Platform)
}

func (d *Descriptor) Vendor() (string, bool) {
	if d == nil {
		return "", false
	}
	return text(d.Vendor)
}

func (d *Descriptor) HardwareConcurrency() (int, bool) {
	if d == nil {
		return 0, false
	}
	return integer(d.HardwareConcurrency)
}

func (d *Descriptor) DeviceMemory() (float64, bool) {
	if d == nil || d.DeviceMemory == nil || *d.DeviceMemory == 0 {
		return 0, false
	}
	return *d.DeviceMemory, true
}

// Screen is available when the client reported a screen object; missing
// dimensions inside it default to 0.
func (d *Descriptor) Screen() (Screen, bool) {
	if d == nil || d.Screen == nil {
		return Screen{}, false
	}
	sc := d.Screen
	return Screen{
		Width:       deref(sc.Width),
		Height:      deref(sc.Height),
		AvailWidth:  deref(sc.AvailWidth),
		AvailHeight: deref(sc.AvailHeight),
		ColorDepth:  deref(sc.ColorDepth),
		PixelDepth:  deref(sc.PixelDepth),
	}, true
}
