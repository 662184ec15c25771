package get_venue_status

import (
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/service/availability"
	"github.com/m04kA/SMC-VenueFinder/internal/service/schedule"
)

// IndexProvider источник текущего индекса аудиторий
type IndexProvider interface {
	Index() (*schedule.Index, error)
}

// AvailabilityEngine движок доступности
type AvailabilityEngine interface {
	IsAvailableNow(v *domain.Venue, now time.Time) bool
	NextAvailableTime(v *domain.Venue, now time.Time) availability.NextAvailability
}

// Suggester подбор похожих идентификаторов при опечатке
type Suggester interface {
	Suggest(query string, candidates []string) []string
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
