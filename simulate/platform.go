package simulate

import "strings"

// Platform describes the host being simulated. It replaces sniffing a
// global navigator: callers say which browser they mean.
type Platform struct {
	// UserAgent is matched case-insensitively; "chrome" selects pointer
	// events for click and contextmenu.
	UserAgent string
	// TouchEvents reports whether the host has a TouchEvent constructor.
	// Without one, touch types are built as plain UI events.
	TouchEvents bool
}

var (
	Chrome = Platform{
		UserAgent:   "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		TouchEvents: true,
	}
	Firefox = Platform{
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	}
	Safari = Platform{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	}
)

// PointerClicks reports whether click and contextmenu are PointerEvents.
// Chromium made the switch in late 2022.
func (p Platform) PointerClicks() bool {
	return strings.Contains(strings.ToLower(p.UserAgent), "chrome")
}

// PlatformByName returns one of the presets by case-insensitive name.
func PlatformByName(name string) (Platform, bool) {
	switch strings.ToLower(name) {
	case "chrome", "chromium":
		return Chrome, true
	case "firefox":
		return Firefox, true
	case "safari":
		return Safari, true
	}
	return Platform{}, false
}
