package list_locations

import (
	"net/http"

	"github.com/m04kA/SMC-VenueFinder/internal/api/handlers"
	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

const msgSelectLocation = "Select the location/faculty you want!"

type Logger interface {
	Info(format string, v ...interface{})
}

// LocationsResponse HTTP response model
type LocationsResponse struct {
	Locations []Location `json:"locations"`
	Message   string     `json:"message"`
}

// Location группа аудиторий
type Location struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Handler struct {
	response *LocationsResponse
	logger   Logger
}

func NewHandler(logger Logger) *Handler {
	locations := make([]Location, len(domain.Locations))
	for i, loc := range domain.Locations {
		locations[i] = Location{Code: string(loc), Label: loc.Label()}
	}
	return &Handler{
		response: &LocationsResponse{Locations: locations, Message: msgSelectLocation},
		logger:   logger,
	}
}

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	h.logger.Info("GET /locations - Locations listed: count=%d", len(h.response.Locations))
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
