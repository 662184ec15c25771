package find_nearby_venues

import (
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// Request модель запроса ближайших свободных аудиторий.
// Точка берется либо из сессии, либо передается явно.
type Request struct {
	SessionID string
	Origin    *domain.Coordinates
	TimeRange string // HHMM-HHMM
}

// NearbyVenue свободная аудитория и расстояние до нее
type NearbyVenue struct {
	VenueID  string
	Location domain.Location
	Distance float64 // в градусах, плоская метрика
	MapsURL  string
}

// Response модель ответа
type Response struct {
	Origin    domain.Coordinates
	Window    domain.TimeRange
	Venues    []NearbyVenue // по возрастанию расстояния
	CheckedAt time.Time
}
