package domain

import "fmt"

// Location кампусная зона, по которой группируются аудитории
type Location string

const (
	LocationBIZ   Location = "BIZ"
	LocationENGIN Location = "ENGIN"
	LocationFASS  Location = "FASS"
	LocationFOS   Location = "FOS"
	LocationI3    Location = "I3"
	LocationLAW   Location = "LAW"
	LocationSDE   Location = "SDE"
	LocationSOC   Location = "SOC"
	LocationUTOWN Location = "UTOWN"
	LocationYALE  Location = "YALE"
	LocationYLLSM Location = "YLLSM"
	LocationYSTCM Location = "YSTCM"
)

// Locations список зон в порядке отображения
var Locations = []Location{
	LocationBIZ,
	LocationENGIN,
	LocationFASS,
	LocationFOS,
	LocationI3,
	LocationLAW,
	LocationSDE,
	LocationSOC,
	LocationUTOWN,
	LocationYALE,
	LocationYLLSM,
	LocationYSTCM,
}

var locationLabels = map[Location]string{
	LocationBIZ:   "BIZ📈",
	LocationENGIN: "ENGIN⚙️",
	LocationFASS:  "FASS🎭",
	LocationFOS:   "FOS🧪",
	LocationI3:    "I3💡",
	LocationLAW:   "LAW⚖️",
	LocationSDE:   "SDE🏛",
	LocationSOC:   "SOC🖥",
	LocationUTOWN: "UTOWN📚",
	LocationYALE:  "YALE🐦",
	LocationYLLSM: "YLLSM🩺",
	LocationYSTCM: "YSTCM🎼",
}

// ParseLocation возвращает зону по тегу
func ParseLocation(s string) (Location, error) {
	loc := Location(s)
	if !loc.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	return loc, nil
}

// IsValid returns true if the location is one of the known campus zones
func (l Location) IsValid() bool {
	_, ok := locationLabels[l]
	return ok
}

// Label returns the display label used on location buttons
func (l Location) Label() string {
	if label, ok := locationLabels[l]; ok {
		return label
	}
	return string(l)
}
