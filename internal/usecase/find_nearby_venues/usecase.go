package find_nearby_venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/infra/storage/session"
)

const queryName = "nearby_venues"

// UseCase use case поиска ближайших аудиторий, свободных весь интервал
type UseCase struct {
	index        IndexProvider
	sessions     SessionRepository
	engine       AvailabilityEngine
	ranker       ProximityRanker
	observer     QueryObserver
	timeProvider TimeProvider
	logger       Logger
	numResults   int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	index IndexProvider,
	sessions SessionRepository,
	engine AvailabilityEngine,
	ranker ProximityRanker,
	observer QueryObserver,
	logger Logger,
	numResults int,
) *UseCase {
	return &UseCase{
		index:        index,
		sessions:     sessions,
		engine:       engine,
		ranker:       ranker,
		observer:     observer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		numResults:   numResults,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNearbyVenues: session=%s, time_range=%s", req.SessionID, req.TimeRange)

	// 1. Валидация входных данных
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("FindNearbyVenues: validation failed: %v", err)
		uc.observer.ObserveQuery(queryName, "invalid")
		return nil, err
	}

	// 2. Определяем точку пользователя
	origin, err := uc.resolveOrigin(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем текущий индекс
	idx, err := uc.index.Index()
	if err != nil {
		uc.logger.Error("FindNearbyVenues: failed to get index: %v", err)
		return nil, fmt.Errorf("%w: failed to get index: %v", ErrInternal, err)
	}

	// 4. Достаем аудитории по возрастанию расстояния, пока не наберем нужное количество свободных
	now := uc.timeProvider.Now()
	ranking := uc.ranker.Rank(origin, idx.Venues())
	candidates, err := ranking.TakeMatching(uc.numResults, func(v *domain.Venue) (bool, error) {
		return uc.engine.IsAvailableForWindow(v, now, window)
	})
	if err != nil {
		uc.logger.Error("FindNearbyVenues: window=%s: %v", window, err)
		return nil, fmt.Errorf("%w: failed to check window: %v", ErrInternal, err)
	}

	venues := make([]NearbyVenue, 0, len(candidates))
	for _, c := range candidates {
		venues = append(venues, NearbyVenue{
			VenueID:  c.Venue.ID,
			Location: c.Venue.Location,
			Distance: c.Distance,
			MapsURL:  c.Venue.MapsURL(),
		})
	}

	uc.observer.ObserveQuery(queryName, "ok")
	uc.logger.Info("FindNearbyVenues: window=%s, found=%d", window, len(venues))

	return &Response{
		Origin:    origin,
		Window:    window,
		Venues:    venues,
		CheckedAt: now,
	}, nil
}

// resolveOrigin возвращает явно переданную точку или точку из сессии
func (uc *UseCase) resolveOrigin(ctx context.Context, req *Request) (domain.Coordinates, error) {
	if req.Origin != nil {
		return *req.Origin, nil
	}

	s, err := uc.sessions.Get(ctx, strings.TrimSpace(req.SessionID))
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("FindNearbyVenues: session=%s not found or expired", req.SessionID)
			uc.observer.ObserveQuery(queryName, "session_expired")
			return domain.Coordinates{}, ErrSessionNotFound
		}
		uc.logger.Error("FindNearbyVenues: failed to get session=%s: %v", req.SessionID, err)
		return domain.Coordinates{}, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	return s.Origin, nil
}
