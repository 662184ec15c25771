package start_nearby_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// SessionRepository хранилище сессий поиска рядом
type SessionRepository interface {
	Save(ctx context.Context, s *domain.NearbySession) error
}

// SessionObserver метрики созданных сессий
type SessionObserver interface {
	SessionCreated()
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
