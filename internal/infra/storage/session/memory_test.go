package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository(10 * time.Minute)
	repo.now = func() time.Time { return now }

	s := &domain.NearbySession{ID: "abc", Origin: domain.Coordinates{Lat: 1.29, Long: 103.77}, CreatedAt: now}
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// сессию можно читать повторно
	_, err = repo.Get(ctx, "abc")
	require.NoError(t, err)

	now = now.Add(10 * time.Minute)
	_, err = repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryRepositorySweepAndDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository(time.Minute)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Save(ctx, &domain.NearbySession{ID: "old"}))
	now = now.Add(30 * time.Second)
	require.NoError(t, repo.Save(ctx, &domain.NearbySession{ID: "new"}))
	require.NoError(t, repo.Save(ctx, &domain.NearbySession{ID: "gone"}))
	require.NoError(t, repo.Delete(ctx, "gone"))

	now = now.Add(45 * time.Second)
	assert.Equal(t, 1, repo.Sweep())

	_, err := repo.Get(ctx, "new")
	assert.NoError(t, err)
	_, err = repo.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
