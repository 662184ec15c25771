package schedule

import (
	"context"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// SnapshotLoader источник снапшота (файл, postgres)
type SnapshotLoader interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// SnapshotObserver получает события о загрузке снапшота (метрики)
type SnapshotObserver interface {
	SnapshotLoaded(venues int)
	SnapshotRejected()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
