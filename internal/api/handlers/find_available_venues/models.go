package find_available_venues

import (
	"fmt"
	"strings"

	findAvailableVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_available_venues"
)

// AvailableVenuesResponse HTTP response model
type AvailableVenuesResponse struct {
	Location string  `json:"location"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Venues   []Venue `json:"venues"`
	Message  string  `json:"message"`
}

// Venue свободная аудитория
type Venue struct {
	VenueID string `json:"venueId"`
	MapsURL string `json:"mapsUrl,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findAvailableVenues.Response) *AvailableVenuesResponse {
	from, to := resp.Window.Start.String(), resp.Window.End.String()

	venues := make([]Venue, len(resp.Venues))
	var msg strings.Builder
	fmt.Fprintf(&msg, "These are the veNUeS that are available from %s to %s:", from, to)
	for i, v := range resp.Venues {
		venues[i] = Venue{VenueID: v.VenueID, MapsURL: v.MapsURL}
		fmt.Fprintf(&msg, "\n• [%s](%s)", v.VenueID, v.MapsURL)
	}

	return &AvailableVenuesResponse{
		Location: string(resp.Location),
		From:     from,
		To:       to,
		Venues:   venues,
		Message:  msg.String(),
	}
}
