package get_location_venues

import (
	"context"
	"fmt"
	"sort"
)

const queryName = "location_venues"

// UseCase use case поиска аудиторий группы, свободных прямо сейчас
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
	uc.logger.Info("GetLocationVenues: location=%s", req.Location)

	// 1. Валидация входных данных
	loc, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetLocationVenues: validation failed: %v", err)
		uc.observer.ObserveQuery(queryName, "invalid")
		return nil, err
	}

	// 2. Получаем текущий индекс
	idx, err := uc.index.Index()
	if err != nil {
		uc.logger.Error("GetLocationVenues: failed to get index: %v", err)
		return nil, fmt.Errorf("%w: failed to get index: %v", ErrInternal, err)
	}

	// 3. Отбираем свободные сейчас аудитории
	now := uc.timeProvider.Now()
	free := make([]FreeVenue, 0)
	for _, id := range idx.ByLocation(loc) {
		venue, err := idx.Get(id)
		if err != nil {
			uc.logger.Error("GetLocationVenues: venue=%s listed but missing: %v", id, err)
			return nil, fmt.Errorf("%w: inconsistent index: %v", ErrInternal, err)
		}
		if !uc.engine.IsAvailableNow(venue, now) {
			continue
		}
		free = append(free, FreeVenue{
			VenueID: venue.ID,
			MapsURL: venue.MapsURL(),
			FreeFor: uc.engine.FreeDurationFromNow(venue, now),
		})
	}

	// 4. Сортируем по длительности, при равенстве сохраняем порядок индекса
	sort.SliceStable(free, func(i, j int) bool {
		return free[i].FreeFor > free[j].FreeFor
	})
	if uc.numResults > 0 && len(free) > uc.numResults {
		free = free[:uc.numResults]
	}

	uc.observer.ObserveQuery(queryName, "ok")
	uc.logger.Info("GetLocationVenues: location=%s, free=%d", loc, len(free))

	return &Response{
		Location:  loc,
		Venues:    free,
		CheckedAt: now,
	}, nil
}
