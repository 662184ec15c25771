package get_location_venues

import (
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/service/availability"
)

// Request модель запроса свободных сейчас аудиторий группы
type Request struct {
	Location string
}

// FreeVenue свободная аудитория и сколько она еще будет свободна
type FreeVenue struct {
	VenueID string
	MapsURL string
	FreeFor availability.FreeSpan
}

// Response модель ответа
type Response struct {
	Location  domain.Location
	Venues    []FreeVenue // по убыванию FreeFor, не более NumResults
	CheckedAt time.Time
}
