package find_nearby_venues

import (
	"context"

	findNearbyVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_nearby_venues"
)

type FindNearbyVenuesUseCase interface {
	Execute(ctx context.Context, req *findNearbyVenues.Request) (*findNearbyVenues.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
