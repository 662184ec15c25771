package find_available_venues

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueFinder/internal/api/handlers"
	findAvailableVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_available_venues"
)

const (
	msgInvalidLocation  = "unknown location, see /api/v1/locations"
	msgMissingTimeRange = "Please enter start and end time! Time must be in 24 hour format! e.g. 0930-1450"
	msgInvalidTimeRange = "Invalid time. Please try again! :( End time cannot be earlier than start time, e.g. 0930-1450"
)

type Handler struct {
	useCase FindAvailableVenuesUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableVenuesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{location}/availability
// Query params: timeRange (required, HHMM-HHMM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	location := mux.Vars(r)["location"]

	timeRange := r.URL.Query().Get("timeRange")
	if timeRange == "" {
		h.logger.Warn("GET /locations/{location}/availability - Missing time range")
		handlers.RespondBadRequest(w, msgMissingTimeRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &findAvailableVenues.Request{
		Location:  location,
		TimeRange: timeRange,
	})
	if err != nil {
		switch {
		case errors.Is(err, findAvailableVenues.ErrInvalidLocation):
			h.logger.Warn("GET /locations/{location}/availability - Invalid location: location=%s", location)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		case errors.Is(err, findAvailableVenues.ErrInvalidTimeRange):
			h.logger.Warn("GET /locations/{location}/availability - Invalid time range: time_range=%s, error=%v", timeRange, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /locations/{location}/availability - Failed to find venues: location=%s, time_range=%s, error=%v",
				location, timeRange, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{location}/availability - Venues found: location=%s, window=%s, count=%d",
		result.Location, result.Window, len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
