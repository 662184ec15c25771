package find_available_venues

import (
	"context"
	"fmt"
)

const queryName = "available_venues"

// UseCase use case поиска аудиторий группы, свободных весь интервал
type UseCase struct {
	index        IndexProvider
	engine       AvailabilityEngine
	observer     QueryObserver
	timeProvider TimeProvider
	logger       Logger
	numResults   int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	index IndexProvider,
	engine AvailabilityEngine,
	observer QueryObserver,
	logger Logger,
	numResults int,
) *UseCase {
	return &UseCase{
		index:        index,
		engine:       engine,
		observer:     observer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		numResults:   numResults,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableVenues: location=%s, time_range=%s", req.Location, req.TimeRange)

	// 1. Валидация входных данных
	loc, window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("FindAvailableVenues: validation failed: %v", err)
		uc.observer.ObserveQuery(queryName, "invalid")
		return nil, err
	}

	// 2. Получаем текущий индекс
	idx, err := uc.index.Index()
	if err != nil {
		uc.logger.Error("FindAvailableVenues: failed to get index: %v", err)
		return nil, fmt.Errorf("%w: failed to get index: %v", ErrInternal, err)
	}

	// 3. Проверяем каждую аудиторию группы в порядке снапшота
	now := uc.timeProvider.Now()
	venues := make([]Venue, 0)
	for _, id := range idx.ByLocation(loc) {
		if uc.numResults > 0 && len(venues) >= uc.numResults {
			break
		}

		venue, err := idx.Get(id)
		if err != nil {
			uc.logger.Error("FindAvailableVenues: venue=%s listed but missing: %v", id, err)
			return nil, fmt.Errorf("%w: inconsistent index: %v", ErrInternal, err)
		}

		free, err := uc.engine.IsAvailableForWindow(venue, now, window)
		if err != nil {
			uc.logger.Error("FindAvailableVenues: venue=%s window=%s: %v", id, window, err)
			return nil, fmt.Errorf("%w: failed to check window: %v", ErrInternal, err)
		}
		if free {
			venues = append(venues, Venue{VenueID: venue.ID, MapsURL: venue.MapsURL()})
		}
	}

	uc.observer.ObserveQuery(queryName, "ok")
	uc.logger.Info("FindAvailableVenues: location=%s, window=%s, found=%d", loc, window, len(venues))

	return &Response{
		Location:  loc,
		Window:    window,
		Venues:    venues,
		CheckedAt: now,
	}, nil
}
