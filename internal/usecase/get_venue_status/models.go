package get_venue_status

import (
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/service/availability"
)

// Request модель запроса статуса аудитории
type Request struct {
	VenueID string // как ввел пользователь, регистр не важен
}

// Response модель ответа со статусом аудитории
type Response struct {
	VenueID       string
	Location      domain.Location
	MapsURL       string
	AvailableNow  bool                          // свободна ближайший час
	NextAvailable *availability.NextAvailability // заполнено, только если сейчас занята
	CheckedAt     time.Time
}
