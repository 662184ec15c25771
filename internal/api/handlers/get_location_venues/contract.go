package get_location_venues

import (
	"context"

	getLocationVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_location_venues"
)

type GetLocationVenuesUseCase interface {
	Execute(ctx context.Context, req *getLocationVenues.Request) (*getLocationVenues.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
