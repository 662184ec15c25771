package find_nearby_venues

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/service/proximity"
	"github.com/m04kA/SMC-VenueFinder/internal/service/schedule"
)

// IndexProvider источник текущего индекса аудиторий
type IndexProvider interface {
	Index() (*schedule.Index, error)
}

// SessionRepository хранилище сессий поиска рядом
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.NearbySession, error)
}

// AvailabilityEngine движок доступности
type AvailabilityEngine interface {
	IsAvailableForWindow(v *domain.Venue, now time.Time, window domain.TimeRange) (bool, error)
}

// ProximityRanker ранжирование аудиторий по расстоянию
type ProximityRanker interface {
	Rank(origin domain.Coordinates, venues []*domain.Venue) *proximity.Ranking
}

// QueryObserver метрики запросов
type QueryObserver interface {
	ObserveQuery(query, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
