// Package fingerprint derives a coarse browser, operating system and device
// class from a User-Agent header for the access log.
package fingerprint

import "strings"

// Unknown is reported for any component that cannot be recognised.
const Unknown = "Unknown"

// Device classes.
const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
)

// Fingerprint is the parsed form of a User-Agent.
type Fingerprint struct {
	Browser string `json:"browser"`
	OS      string `json:"os"`
	Device  string `json:"device"`
}

type rule struct {
	name    string
	markers []string
	unless  []string
}

// Rules are checked in order. Many engines embed the tokens of the engine
// they derive from (Edge carries "Chrome/" and "Safari/"), so the most
// specific product comes first.
var browsers = []rule{
	{name: "Edge", markers: []string{"edg/", "edge/", "edga/", "edgios/"}},
	{name: "Opera", markers: []string{"opr/", "opera", "opios/"}},
	{name: "Samsung Internet", markers: []string{"samsungbrowser/"}},
	{name: "Firefox", markers: []string{"firefox/", "fxios/"}},
	{name: "Chrome", markers: []string{"chrome/", "crios/", "chromium/"}},
	{name: "Safari", markers: []string{"safari/"}, unless: []string{"android"}},
	{name: "Internet Explorer", markers: []string{"msie ", "trident/"}},
}

var systems = []rule{
	{name: "Windows", markers: []string{"windows"}},
	{name: "iOS", markers: []string{"iphone", "ipad", "ipod"}},
	{name: "macOS", markers: []string{"macintosh", "mac os x"}},
	{name: "Android", markers: []string{"android"}},
	{name: "ChromeOS", markers: []string{"cros "}},
	{name: "Linux", markers: []string{"linux", "x11"}},
}

// Extract parses ua. It never fails: unrecognised components are Unknown,
// and an empty ua yields Unknown for all three.
func Extract(ua string) Fingerprint {
	s := strings.ToLower(strings.TrimSpace(ua))
	if s == "" {
		return Fingerprint{Browser: Unknown, OS: Unknown, Device: Unknown}
	}

	return Fingerprint{
		Browser: match(browsers, s),
		OS:      match(systems, s),
		Device:  device(s),
	}
}

func match(rules []rule, s string) string {
	for _, r := range rules {
		if containsAny(s, r.markers) && !containsAny(s, r.unless) {
			return r.name
		}
	}
	return Unknown
}

func device(s string) string {
	switch {
	case containsAny(s, []string{"ipad", "tablet", "kindle", "silk/", "playbook"}):
		return DeviceTablet
	// Android tablets drop the "mobile" token.
	case strings.Contains(s, "android") && !strings.Contains(s, "mobile"):
		return DeviceTablet
	case containsAny(s, []string{"mobile", "iphone", "ipod", "android", "windows phone", "blackberry"}):
		return DeviceMobile
	case containsAny(s, []string{"windows", "macintosh", "x11", "linux", "cros "}):
		return DeviceDesktop
	}
	return Unknown
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
