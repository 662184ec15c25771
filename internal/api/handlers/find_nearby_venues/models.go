package find_nearby_venues

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	findNearbyVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_nearby_venues"
)

// NearbyVenuesResponse HTTP response model
type NearbyVenuesResponse struct {
	From    string        `json:"from"`
	To      string        `json:"to"`
	Venues  []NearbyVenue `json:"venues"`
	Message string        `json:"message"`
}

// NearbyVenue свободная аудитория рядом
type NearbyVenue struct {
	VenueID  string  `json:"venueId"`
	Location string  `json:"location,omitempty"`
	Distance float64 `json:"distance"`
	MapsURL  string  `json:"mapsUrl,omitempty"`
}

// parseOrigin разбирает lat и long из query параметров
func parseOrigin(lat, long string) (*domain.Coordinates, error) {
	if lat == "" || long == "" {
		return nil, fmt.Errorf("lat and long are required")
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, fmt.Errorf("lat: %w", err)
	}
	lo, err := strconv.ParseFloat(long, 64)
	if err != nil {
		return nil, fmt.Errorf("long: %w", err)
	}
	return &domain.Coordinates{Lat: la, Long: lo}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findNearbyVenues.Response) *NearbyVenuesResponse {
	from, to := resp.Window.Start.String(), resp.Window.End.String()

	venues := make([]NearbyVenue, len(resp.Venues))
	var msg strings.Builder
	fmt.Fprintf(&msg, "These are the veNUeS that are available from %s to %s near you:", from, to)
	for i, v := range resp.Venues {
		venues[i] = NearbyVenue{
			VenueID:  v.VenueID,
			Location: string(v.Location),
			Distance: v.Distance,
			MapsURL:  v.MapsURL,
		}
		fmt.Fprintf(&msg, "\n• [%s](%s)", v.VenueID, v.MapsURL)
	}

	return &NearbyVenuesResponse{
		From:    from,
		To:      to,
		Venues:  venues,
		Message: msg.String(),
	}
}
