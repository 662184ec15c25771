package start_nearby_session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// UseCase use case первого шага поиска рядом: запоминаем точку пользователя
type UseCase struct {
	sessions     SessionRepository
	observer     SessionObserver
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
	ttl          time.Duration
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRepository, observer SessionObserver, logger Logger, ttl time.Duration) *UseCase {
	return &UseCase{
		sessions:     sessions,
		observer:     observer,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
		ttl:          ttl,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartNearbySession: lat=%v, long=%v", req.Lat, req.Long)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartNearbySession: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем сессию
	now := uc.timeProvider.Now()
	s := &domain.NearbySession{
		ID:        uc.newID(),
		Origin:    domain.Coordinates{Lat: req.Lat, Long: req.Long},
		CreatedAt: now,
	}
	if err := uc.sessions.Save(ctx, s); err != nil {
		uc.logger.Error("StartNearbySession: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	uc.observer.SessionCreated()
	uc.logger.Info("StartNearbySession: session=%s created", s.ID)

	return &Response{
		SessionID: s.ID,
		Lat:       s.Origin.Lat,
		Long:      s.Origin.Long,
		ExpiresAt: now.Add(uc.ttl),
	}, nil
}
