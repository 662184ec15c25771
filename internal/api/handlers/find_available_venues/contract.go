package find_available_venues

import (
	"context"

	findAvailableVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_available_venues"
)

type FindAvailableVenuesUseCase interface {
	Execute(ctx context.Context, req *findAvailableVenues.Request) (*findAvailableVenues.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
