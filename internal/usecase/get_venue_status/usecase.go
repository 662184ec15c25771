package get_venue_status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/service/schedule"
)

const queryName = "venue_status"

// UseCase use case проверки, свободна ли аудитория в ближайший час
type UseCase struct {
	index        IndexProvider
	engine       AvailabilityEngine
	suggester    Suggester
	observer     QueryObserver
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	index IndexProvider,
	engine AvailabilityEngine,
	suggester Suggester,
	observer QueryObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		index:        index,
		engine:       engine,
		suggester:    suggester,
		observer:     observer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения статуса аудитории
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	venueID := strings.ToUpper(strings.TrimSpace(req.VenueID))
	uc.logger.Info("GetVenueStatus: venue=%s", venueID)

	// 1. Валидация входных данных
	if venueID == "" {
		uc.logger.Warn("GetVenueStatus: empty venue id")
		return nil, fmt.Errorf("%w: venue id is required", ErrInvalidInput)
	}

	// 2. Получаем текущий индекс
	idx, err := uc.index.Index()
	if err != nil {
		uc.logger.Error("GetVenueStatus: failed to get index: %v", err)
		return nil, fmt.Errorf("%w: failed to get index: %v", ErrInternal, err)
	}

	// 3. Ищем аудиторию, при опечатке подбираем похожие
	venue, err := idx.Get(venueID)
	if err != nil {
		if errors.Is(err, schedule.ErrVenueNotFound) {
			suggestions := uc.suggester.Suggest(venueID, idx.IDs())
			uc.logger.Warn("GetVenueStatus: venue=%s not found, suggestions=%d", venueID, len(suggestions))
			uc.observer.ObserveQuery(queryName, "not_found")
			return nil, &VenueNotFoundError{VenueID: venueID, Suggestions: suggestions}
		}
		uc.logger.Error("GetVenueStatus: failed to get venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 4. Проверяем доступность на ближайший час
	now := uc.timeProvider.Now()
	resp := &Response{
		VenueID:      venue.ID,
		Location:     venue.Location,
		MapsURL:      venue.MapsURL(),
		AvailableNow: uc.engine.IsAvailableNow(venue, now),
		CheckedAt:    now,
	}

	// 5. Если занята, ищем ближайшее свободное время
	if !resp.AvailableNow {
		next := uc.engine.NextAvailableTime(venue, now)
		resp.NextAvailable = &next
	}

	uc.observer.ObserveQuery(queryName, outcome(resp))
	uc.logger.Info("GetVenueStatus: venue=%s, available_now=%t", venue.ID, resp.AvailableNow)

	return resp, nil
}

func outcome(resp *Response) string {
	if resp.AvailableNow {
		return "available"
	}
	return "occupied"
}
