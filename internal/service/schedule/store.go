package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Store держит текущий индекс и атомарно подменяет его при перезагрузке.
// Читатели получают неизменяемый *Index и работают с ним без блокировок.
type Store struct {
	current  atomic.Pointer[Index]
	loader   SnapshotLoader
	observer SnapshotObserver
	logger   Logger

	reloadMu sync.Mutex
}

// NewStore создает хранилище снапшота. observer может быть nil.
func NewStore(loader SnapshotLoader, observer SnapshotObserver, logger Logger) *Store {
	return &Store{
		loader:   loader,
		observer: observer,
		logger:   logger,
	}
}

// Reload загружает снапшот и подменяет индекс.
// При ошибке текущий индекс остается в работе.
func (s *Store) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		s.reject()
		s.logger.Error("Reload: failed to load snapshot: %v", err)
		if errors.Is(err, ErrCorruptSnapshot) {
			return err
		}
		return fmt.Errorf("%w: load snapshot: %v", ErrInternal, err)
	}

	idx, err := NewIndex(snapshot)
	if err != nil {
		s.reject()
		s.logger.Error("Reload: snapshot rejected: %v", err)
		return err
	}

	s.current.Store(idx)
	if s.observer != nil {
		s.observer.SnapshotLoaded(idx.Len())
	}

	s.logger.Info("Reload: snapshot loaded: venues=%d, source=%s, generated_at=%s",
		idx.Len(), snapshot.Source, snapshot.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}

// Index возвращает текущий индекс
func (s *Store) Index() (*Index, error) {
	idx := s.current.Load()
	if idx == nil {
		return nil, ErrNotLoaded
	}
	return idx, nil
}

func (s *Store) reject() {
	if s.observer != nil {
		s.observer.SnapshotRejected()
	}
}
