// Package geo maps free-text St. Croix area names to coordinates so imported
// listings land on the map without a geocoding round trip.
package geo

import "strings"

// Coordinates are kept as strings: they pass through to CSV columns untouched
// and never participate in arithmetic.
type Coordinates struct {
	Lat string
	Lng string
}

// IslandCenter is the fallback point used when an area name is unknown.
var IslandCenter = Coordinates{Lat: "17.7478", Lng: "-64.7059"}

type area struct {
	name   string
	coords Coordinates
}

// areas maps lowercase area names from the export's location column to
// representative coordinates. Order matters: the containment fallback in
// Lookup scans this list top to bottom, so towns outrank looser regions when
// a compound value mentions both.
var areas = []area{
	// Main towns
	{"christiansted", Coordinates{"17.7475", "-64.7011"}},
	{"frederiksted", Coordinates{"17.7128", "-64.8844"}},

	// Directional areas
	{"east end", Coordinates{"17.7644", "-64.5850"}},
	{"west end", Coordinates{"17.7100", "-64.8900"}},
	{"north shore", Coordinates{"17.7750", "-64.7500"}},
	{"mid island", Coordinates{"17.7300", "-64.7500"}},

	// Neighborhoods and bays
	{"gallows bay", Coordinates{"17.7400", "-64.6900"}},
	{"cane bay", Coordinates{"17.7717", "-64.8078"}},
	{"salt river", Coordinates{"17.7800", "-64.7600"}},
	{"sandy point", Coordinates{"17.6800", "-64.9000"}},
	{"5 corners", Coordinates{"17.7500", "-64.7100"}},

	// Points of interest
	{"buck island", Coordinates{"17.7889", "-64.6222"}},
	{"airport", Coordinates{"17.7019", "-64.7986"}},
	{"frederiksted pier", Coordinates{"17.7115", "-64.8845"}},
	{"the buccaneer", Coordinates{"17.7569", "-64.6247"}},

	// Island-wide services
	{"island wide", IslandCenter},
	{"island-wide", IslandCenter},

	// Special cases seen in the export
	{"accessible by boat only", IslandCenter},
	{"us virgin islands and stateside", IslandCenter},
}

// Lookup resolves an area description to coordinates. An exact lowercase
// match wins; otherwise the first known area contained in the string is used,
// which handles compound values like "Office Location: Christiansted".
func Lookup(location string) (Coordinates, bool) {
	needle := strings.ToLower(strings.TrimSpace(location))
	if needle == "" {
		return Coordinates{}, false
	}

	for _, a := range areas {
		if a.name == needle {
			return a.coords, true
		}
	}
	for _, a := range areas {
		if strings.Contains(needle, a.name) {
			return a.coords, true
		}
	}

	return Coordinates{}, false
}

// LookupOrDefault resolves an area description, falling back to the island
// center when the area is empty or unknown.
func LookupOrDefault(location string) Coordinates {
	if coords, ok := Lookup(location); ok {
		return coords
	}
	return IslandCenter
}
