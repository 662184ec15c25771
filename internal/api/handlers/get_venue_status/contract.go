package get_venue_status

import (
	"context"

	getVenueStatus "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_venue_status"
)

type GetVenueStatusUseCase interface {
	Execute(ctx context.Context, req *getVenueStatus.Request) (*getVenueStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
