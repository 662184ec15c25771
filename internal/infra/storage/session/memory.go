package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

type memoryEntry struct {
	session   domain.NearbySession
	expiresAt time.Time
}

// MemoryRepository хранилище сессий в памяти процесса
type MemoryRepository struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryRepository создает хранилище сессий с временем жизни ttl
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Save сохраняет сессию, продлевая время жизни
func (r *MemoryRepository) Save(_ context.Context, s *domain.NearbySession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.ID] = memoryEntry{session: *s, expiresAt: r.now().Add(r.ttl)}
	return nil
}

// Get возвращает сессию, истекшие сессии удаляются
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.NearbySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.items[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !r.now().Before(entry.expiresAt) {
		delete(r.items, id)
		return nil, ErrSessionNotFound
	}

	s := entry.session
	return &s, nil
}

// Delete удаляет сессию
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

// Sweep удаляет истекшие сессии и возвращает их количество
func (r *MemoryRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, entry := range r.items {
		if !now.Before(entry.expiresAt) {
			delete(r.items, id)
			removed++
		}
	}
	return removed
}

// RunSweeper периодически чистит истекшие сессии до отмены ctx
func (r *MemoryRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
