package start_nearby_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueFinder/internal/api/handlers"
	startNearbySession "github.com/m04kA/SMC-VenueFinder/internal/usecase/start_nearby_session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingLocation    = "Please provide your location: lat and long are required"
	msgInvalidLocation    = "lat must be within [-90, 90] and long within [-180, 180]"
)

type Handler struct {
	useCase StartNearbySessionUseCase
	logger  Logger
}

func NewHandler(useCase StartNearbySessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/nearby-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartNearbySessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /nearby-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, ok := req.ToUseCaseRequest()
	if !ok {
		h.logger.Warn("POST /nearby-sessions - Missing coordinates")
		handlers.RespondBadRequest(w, msgMissingLocation)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, startNearbySession.ErrInvalidInput):
			h.logger.Warn("POST /nearby-sessions - Invalid coordinates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		default:
			h.logger.Error("POST /nearby-sessions - Failed to start session: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /nearby-sessions - Session started: session_id=%s", result.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
