package get_venue_status

import (
	"fmt"

	"github.com/m04kA/SMC-VenueFinder/internal/service/availability"
	getVenueStatus "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_venue_status"
)

// VenueStatusResponse HTTP response model
type VenueStatusResponse struct {
	VenueID       string            `json:"venueId"`
	Location      string            `json:"location,omitempty"`
	MapsURL       string            `json:"mapsUrl,omitempty"`
	AvailableNow  bool              `json:"availableNow"`
	NextAvailable *NextAvailability `json:"nextAvailable,omitempty"`
	Message       string            `json:"message"`
}

// NextAvailability когда аудитория освободится
type NextAvailability struct {
	Kind string `json:"kind"`
	Time string `json:"time,omitempty"`
}

// NotFoundResponse аудитория не найдена, с вариантами
type NotFoundResponse struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getVenueStatus.Response) *VenueStatusResponse {
	out := &VenueStatusResponse{
		VenueID:      resp.VenueID,
		Location:     string(resp.Location),
		MapsURL:      resp.MapsURL,
		AvailableNow: resp.AvailableNow,
	}

	if resp.AvailableNow {
		out.Message = fmt.Sprintf("%s is available for the next hour! 🚀", resp.VenueID)
		return out
	}

	next := NextAvailability{Kind: string(availability.NextNoneToday)}
	if resp.NextAvailable != nil {
		next.Kind = string(resp.NextAvailable.Kind)
		if resp.NextAvailable.Kind == availability.NextAt {
			next.Time = resp.NextAvailable.At.String()
		}
	}
	out.NextAvailable = &next
	out.Message = fmt.Sprintf("%s is not available in the next hour :(\nNext available time: %s",
		resp.VenueID, nextMessage(resp.VenueID, next))

	return out
}

func nextMessage(venueID string, next NextAvailability) string {
	switch availability.NextKind(next.Kind) {
	case availability.NextAt:
		return fmt.Sprintf("%s will be available at %s!", venueID, next.Time)
	case availability.NextAllDay:
		return "Available for the whole day! :)"
	default:
		return "Not available today :("
	}
}

// FromNotFoundError конвертирует ошибку с вариантами в HTTP response
func FromNotFoundError(err *getVenueStatus.VenueNotFoundError) *NotFoundResponse {
	suggestions := err.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return &NotFoundResponse{
		Message:     msgVenueNotFound,
		Suggestions: suggestions,
	}
}
