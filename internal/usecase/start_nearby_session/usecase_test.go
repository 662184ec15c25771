package start_nearby_session

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/infra/storage/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type countingObserver struct{ created int }

func (o *countingObserver) SessionCreated() { o.created++ }

type failingRepository struct{}

func (failingRepository) Save(context.Context, *domain.NearbySession) error {
	return errors.New("connection refused")
}

func TestExecuteCreatesSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := session.NewMemoryRepository(10 * time.Minute)
	observer := &countingObserver{}

	uc := NewUseCase(repo, observer, nopLogger{}, 10*time.Minute)
	uc.timeProvider = fixedTime{now: now}
	uc.newID = func() string { return "3f1c2a6e-0000-4000-8000-000000000001" }

	resp, err := uc.Execute(ctx, &Request{Lat: 1.2966, Long: 103.7764})
	require.NoError(t, err)

	assert.Equal(t, "3f1c2a6e-0000-4000-8000-000000000001", resp.SessionID)
	assert.Equal(t, now.Add(10*time.Minute), resp.ExpiresAt)
	assert.Equal(t, 1, observer.created)

	stored, err := repo.Get(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1.2966, stored.Origin.Lat)
	assert.Equal(t, 103.7764, stored.Origin.Long)
}

func TestExecuteGeneratesDistinctIDs(t *testing.T) {
	uc := NewUseCase(session.NewMemoryRepository(time.Minute), &countingObserver{}, nopLogger{}, time.Minute)

	first, err := uc.Execute(context.Background(), &Request{Lat: 1, Long: 103})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Lat: 1, Long: 103})
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(session.NewMemoryRepository(time.Minute), &countingObserver{}, nopLogger{}, time.Minute)

	for _, req := range []*Request{
		{Lat: 91, Long: 0},
		{Lat: 0, Long: -181},
		{Lat: math.NaN(), Long: 0},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecuteStorageFailure(t *testing.T) {
	observer := &countingObserver{}
	uc := NewUseCase(failingRepository{}, observer, nopLogger{}, time.Minute)

	_, err := uc.Execute(context.Background(), &Request{Lat: 1, Long: 103})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, observer.created)
}
