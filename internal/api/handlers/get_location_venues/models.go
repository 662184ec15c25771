package get_location_venues

import (
	"fmt"
	"strconv"
	"strings"

	getLocationVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_location_venues"
)

// LocationVenuesResponse HTTP response model
type LocationVenuesResponse struct {
	Location string      `json:"location"`
	Venues   []FreeVenue `json:"venues"`
	Message  string      `json:"message"`
}

// FreeVenue свободная аудитория
type FreeVenue struct {
	VenueID   string  `json:"venueId"`
	MapsURL   string  `json:"mapsUrl,omitempty"`
	FreeHours float64 `json:"freeHours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getLocationVenues.Response) *LocationVenuesResponse {
	venues := make([]FreeVenue, len(resp.Venues))
	var msg strings.Builder
	fmt.Fprintf(&msg, "Here are some veNUeS that are available in %s 🚀", resp.Location)

	for i, v := range resp.Venues {
		venues[i] = FreeVenue{
			VenueID:   v.VenueID,
			MapsURL:   v.MapsURL,
			FreeHours: v.FreeFor.Hours(),
		}
		fmt.Fprintf(&msg, "\n• [%s](%s) is available for next %s hrs",
			v.VenueID, v.MapsURL, strconv.FormatFloat(v.FreeFor.Hours(), 'f', 1, 64))
	}

	return &LocationVenuesResponse{
		Location: string(resp.Location),
		Venues:   venues,
		Message:  msg.String(),
	}
}
