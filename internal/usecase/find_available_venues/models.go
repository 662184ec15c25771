package find_available_venues

import (
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// Request модель запроса аудиторий группы, свободных в интервале
type Request struct {
	Location  string
	TimeRange string // HHMM-HHMM
}

// Venue свободная аудитория
type Venue struct {
	VenueID string
	MapsURL string
}

// Response модель ответа
type Response struct {
	Location  domain.Location
	Window    domain.TimeRange // интервал после округления до слотов
	Venues    []Venue
	CheckedAt time.Time
}
