package nusmods

// CatalogVenue запись каталога аудиторий (venues.json)
type CatalogVenue struct {
	RoomName string         `json:"roomName"`
	Floor    *int           `json:"floor,omitempty"`
	Location *CatalogCoords `json:"location,omitempty"`
}

// CatalogCoords координаты в каталоге: x долгота, y широта
type CatalogCoords struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// Catalog каталог аудиторий, ключ название как в NUSMods
type Catalog map[string]CatalogVenue

// DayAvailability занятость аудитории в один день недели (venueInformation.json)
type DayAvailability struct {
	Day          string            `json:"day"`
	Availability map[string]string `json:"availability"` // HHMM -> "occupied"
}

// AvailabilityFeed занятость аудиторий, ключ название как в NUSMods
type AvailabilityFeed map[string][]DayAvailability
