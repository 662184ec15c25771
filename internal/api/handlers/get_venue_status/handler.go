package get_venue_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueFinder/internal/api/handlers"
	getVenueStatus "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_venue_status"
)

const (
	msgMissingVenueID = "venue id is required"
	msgVenueNotFound  = "Venue not found. Did you mean:"
)

type Handler struct {
	useCase GetVenueStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetVenueStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	result, err := h.useCase.Execute(r.Context(), &getVenueStatus.Request{VenueID: venueID})
	if err != nil {
		var notFound *getVenueStatus.VenueNotFoundError
		switch {
		case errors.As(err, &notFound):
			h.logger.Warn("GET /venues/{id} - Venue not found: venue_id=%s, suggestions=%d", notFound.VenueID, len(notFound.Suggestions))
			handlers.RespondJSON(w, http.StatusNotFound, FromNotFoundError(notFound))

		case errors.Is(err, getVenueStatus.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id} - Invalid venue id: %v", err)
			handlers.RespondBadRequest(w, msgMissingVenueID)

		default:
			h.logger.Error("GET /venues/{id} - Failed to get status: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id} - Status retrieved: venue_id=%s, available_now=%t", result.VenueID, result.AvailableNow)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
