// Package hostenv identifies the execution context on the far side of a
// message channel from its user agent style announcement.
//
// Identification is deliberately coarse. Quirk handling needs the engine
// family, not an exact build, so derivative browsers collapse into the
// engine they ship: Edge and Opera are chromium, Electron stays its own
// family because its channel behaves like neither browser it embeds.
// Unrecognized agents map to FamilyUnknown and participate in no quirks.
package hostenv

import "strings"

// Engine families recognized by Parse.
const (
	FamilyFirefox  = "firefox"
	FamilyChromium = "chromium"
	FamilyWebKit   = "webkit"
	FamilyElectron = "electron"
	FamilyNode     = "node"
	FamilyUnknown  = "unknown"
)

// Identity describes one peer execution context.
type Identity struct {
	Family  string // engine family, one of the Family constants
	Name    string // product name as announced (firefox, chrome, safari, ...)
	Version string // product version, empty when not announced
	Raw     string // the announcement Parse consumed
}

// Matches reports whether the identity belongs to the given family.
// Comparison is case-insensitive.
func (id Identity) Matches(family string) bool {
	return strings.EqualFold(id.Family, family)
}

// String renders the identity for logs.
func (id Identity) String() string {
	if id.Name == "" {
		return id.Family
	}
	if id.Version == "" {
		return id.Name
	}
	return id.Name + "/" + id.Version
}

// Unknown is the identity of a peer that never announced itself.
func Unknown() Identity {
	return Identity{Family: FamilyUnknown}
}

// Parse derives an Identity from a user agent style announcement.
//
// Product checks run most-specific first: every Electron agent also
// announces Chrome, every Chrome agent also announces Safari, and Edge and
// Opera announce both.
func Parse(raw string) Identity {
	ua := strings.TrimSpace(raw)
	if ua == "" {
		return Unknown()
	}

	id := Identity{Raw: raw}

	switch {
	case strings.Contains(ua, "Electron/"):
		id.Family = FamilyElectron
		id.Name = "electron"
		id.Version = versionAfter(ua, "Electron/")
	case strings.Contains(ua, "Firefox/") && !strings.Contains(ua, "Seamonkey/"):
		id.Family = FamilyFirefox
		id.Name = "firefox"
		id.Version = versionAfter(ua, "Firefox/")
	case strings.Contains(ua, "Edg/"):
		id.Family = FamilyChromium
		id.Name = "edge"
		id.Version = versionAfter(ua, "Edg/")
	case strings.Contains(ua, "OPR/"):
		id.Family = FamilyChromium
		id.Name = "opera"
		id.Version = versionAfter(ua, "OPR/")
	case strings.Contains(ua, "Chromium/"):
		id.Family = FamilyChromium
		id.Name = "chromium"
		id.Version = versionAfter(ua, "Chromium/")
	case strings.Contains(ua, "Chrome/"):
		id.Family = FamilyChromium
		id.Name = "chrome"
		id.Version = versionAfter(ua, "Chrome/")
	case strings.Contains(ua, "Safari/") && strings.Contains(ua, "Version/"):
		id.Family = FamilyWebKit
		id.Name = "safari"
		id.Version = versionAfter(ua, "Version/")
	case strings.HasPrefix(ua, "Node.js/"):
		id.Family = FamilyNode
		id.Name = "node"
		id.Version = versionAfter(ua, "Node.js/")
	case strings.HasPrefix(ua, "node/"):
		id.Family = FamilyNode
		id.Name = "node"
		id.Version = versionAfter(ua, "node/")
	default:
		id.Family = FamilyUnknown
	}

	return id
}

// versionAfter extracts the version token following marker.
func versionAfter(ua, marker string) string {
	_, rest, ok := strings.Cut(ua, marker)
	if !ok {
		return ""
	}
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
