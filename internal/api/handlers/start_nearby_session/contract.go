package start_nearby_session

import (
	"context"

	startNearbySession "github.com/m04kA/SMC-VenueFinder/internal/usecase/start_nearby_session"
)

type StartNearbySessionUseCase interface {
	Execute(ctx context.Context, req *startNearbySession.Request) (*startNearbySession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
