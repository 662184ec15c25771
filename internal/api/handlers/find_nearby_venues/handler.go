package find_nearby_venues

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueFinder/internal/api/handlers"
	findNearbyVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_nearby_venues"
)

const (
	msgMissingTimeRange = "Please enter start and end time! Time must be in 24 hour format! e.g. 0930-1450"
	msgInvalidTimeRange = "Invalid time. Please try again! :( End time cannot be earlier than start time, e.g. 0930-1450"
	msgInvalidLocation  = "Please provide your location: lat within [-90, 90] and long within [-180, 180]"
	msgSessionExpired   = "Your location has expired, please share your location again"
)

type Handler struct {
	useCase FindNearbyVenuesUseCase
	logger  Logger
}

func NewHandler(useCase FindNearbyVenuesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSession GET /api/v1/nearby-sessions/{sessionId}/venues
// Query params: timeRange (required, HHMM-HHMM)
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	const route = "GET /nearby-sessions/{id}/venues"

	timeRange := r.URL.Query().Get("timeRange")
	if timeRange == "" {
		h.logger.Warn("%s - Missing time range", route)
		handlers.RespondBadRequest(w, msgMissingTimeRange)
		return
	}

	h.execute(w, r, route, &findNearbyVenues.Request{
		SessionID: mux.Vars(r)["sessionId"],
		TimeRange: timeRange,
	})
}

// HandleOneShot GET /api/v1/nearby
// Query params: lat, long, timeRange (all required)
func (h *Handler) HandleOneShot(w http.ResponseWriter, r *http.Request) {
	const route = "GET /nearby"
	query := r.URL.Query()

	origin, err := parseOrigin(query.Get("lat"), query.Get("long"))
	if err != nil {
		h.logger.Warn("%s - Invalid origin: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidLocation)
		return
	}

	timeRange := query.Get("timeRange")
	if timeRange == "" {
		h.logger.Warn("%s - Missing time range", route)
		handlers.RespondBadRequest(w, msgMissingTimeRange)
		return
	}

	h.execute(w, r, route, &findNearbyVenues.Request{
		Origin:    origin,
		TimeRange: timeRange,
	})
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, req *findNearbyVenues.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, findNearbyVenues.ErrSessionNotFound):
			h.logger.Warn("%s - Session not found: session_id=%s", route, req.SessionID)
			handlers.RespondNotFound(w, msgSessionExpired)

		case errors.Is(err, findNearbyVenues.ErrInvalidTimeRange):
			h.logger.Warn("%s - Invalid time range: time_range=%s, error=%v", route, req.TimeRange, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, findNearbyVenues.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		default:
			h.logger.Error("%s - Failed to find venues: time_range=%s, error=%v", route, req.TimeRange, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Venues found: window=%s, count=%d", route, result.Window, len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
