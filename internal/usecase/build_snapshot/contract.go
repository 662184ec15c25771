package build_snapshot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/integrations/nusmods"
	"github.com/m04kA/SMC-VenueFinder/internal/integrations/refreshbus"
)

// VenueSource источник каталога аудиторий и их занятости
type VenueSource interface {
	FetchCatalog(ctx context.Context) (nusmods.Catalog, error)
	FetchAvailability(ctx context.Context) (nusmods.AvailabilityFeed, error)
}

// SnapshotWriter место записи готового снапшота
type SnapshotWriter interface {
	Save(ctx context.Context, s *domain.Snapshot) error
}

// RefreshPublisher уведомление серверов о новом снапшоте
type RefreshPublisher interface {
	Publish(ctx context.Context, event refreshbus.RefreshEvent) error
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
