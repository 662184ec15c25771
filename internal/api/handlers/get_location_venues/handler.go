package get_location_venues

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueFinder/internal/api/handlers"
	getLocationVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_location_venues"
)

const (
	msgInvalidLocation = "unknown location, see /api/v1/locations"
)

type Handler struct {
	useCase GetLocationVenuesUseCase
	logger  Logger
}

func NewHandler(useCase GetLocationVenuesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{location}/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	location := mux.Vars(r)["location"]

	result, err := h.useCase.Execute(r.Context(), &getLocationVenues.Request{Location: location})
	if err != nil {
		switch {
		case errors.Is(err, getLocationVenues.ErrInvalidLocation):
			h.logger.Warn("GET /locations/{location}/venues - Invalid location: location=%s", location)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		default:
			h.logger.Error("GET /locations/{location}/venues - Failed to get venues: location=%s, error=%v", location, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{location}/venues - Venues retrieved: location=%s, count=%d", result.Location, len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
