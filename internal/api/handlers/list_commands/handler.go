package list_commands

import (
	"net/http"

	"github.com/m04kA/SMC-VenueFinder/internal/api/handlers"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// Command команда чат-интерфейса и соответствующий ей HTTP маршрут
type Command struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Route       string `json:"route"`
}

// CommandsResponse HTTP response model
type CommandsResponse struct {
	Commands []Command `json:"commands"`
	Note     string    `json:"note"`
}

var commands = []Command{
	{Name: "/start", Description: "Starts the bot", Route: "GET /api/v1/commands"},
	{Name: "/help", Description: "Lists available commands", Route: "GET /api/v1/commands"},
	{Name: "/room", Description: "Checks whether veNUeS are available in the next hour", Route: "GET /api/v1/venues/{venueId}"},
	{Name: "/locations", Description: "Lists veNUeS that are currently available in the specified location/faculty", Route: "GET /api/v1/locations/{location}/venues"},
	{Name: "/availability", Description: "Check which veNUeS are available at a specific location/faculty and given time period", Route: "GET /api/v1/locations/{location}/availability?timeRange=HHMM-HHMM"},
	{Name: "/nearme", Description: "List nearest veNUeS that are available in a given time period", Route: "POST /api/v1/nearby-sessions, then GET /api/v1/nearby-sessions/{sessionId}/venues?timeRange=HHMM-HHMM"},
}

const note = "Above commands assume queries for the current day"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/commands
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	h.logger.Info("GET /commands - Commands listed")
	handlers.RespondJSON(w, http.StatusOK, &CommandsResponse{Commands: commands, Note: note})
}
