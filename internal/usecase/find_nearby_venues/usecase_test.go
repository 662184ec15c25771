package find_nearby_venues

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/infra/storage/session"
	"github.com/m04kA/SMC-VenueFinder/internal/service/availability"
	"github.com/m04kA/SMC-VenueFinder/internal/service/proximity"
	"github.com/m04kA/SMC-VenueFinder/internal/service/schedule"
)

var sgt = time.FixedZone("SGT", 8*60*60)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubIndex struct{ idx *schedule.Index }

func (s *stubIndex) Index() (*schedule.Index, error) { return s.idx, nil }

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, string) {}

func at(lat, long float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: lat, Long: long}
}

func busyMonday(t *testing.T, hhmm ...string) domain.WeeklyAvailability {
	t.Helper()
	slots := make([]domain.Slot, 0, len(hhmm))
	for _, s := range hhmm {
		slot, err := domain.ParseSlot(s)
		require.NoError(t, err)
		slots = append(slots, slot)
	}
	return domain.WeeklyAvailability{time.Monday: domain.NewDaySchedule(slots...)}
}

func newUseCase(t *testing.T, numResults int) (*UseCase, *session.MemoryRepository) {
	t.Helper()
	idx, err := schedule.NewIndex(&domain.Snapshot{Venues: []*domain.Venue{
		{ID: "FAR", Coordinates: at(0, 5), Availability: busyMonday(t)},
		{ID: "NEAR-BUSY", Coordinates: at(0, 1), Availability: busyMonday(t, "1000")},
		{ID: "NEAR", Coordinates: at(0, 2), Availability: busyMonday(t)},
		{ID: "NOWHERE", Availability: busyMonday(t)},
		{ID: "MID", Coordinates: at(3, 0), Availability: busyMonday(t)},
	}})
	require.NoError(t, err)

	sessions := session.NewMemoryRepository(time.Minute)
	uc := NewUseCase(&stubIndex{idx: idx}, sessions, availability.NewEngine(sgt), proximity.NewRanker(), nopObserver{}, nopLogger{}, numResults)
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 4, 9, 0, 0, 0, sgt)}
	return uc, sessions
}

func ids(resp *Response) []string {
	out := make([]string, 0, len(resp.Venues))
	for _, v := range resp.Venues {
		out = append(out, v.VenueID)
	}
	return out
}

func TestExecuteWithOrigin(t *testing.T) {
	uc, _ := newUseCase(t, 2)

	resp, err := uc.Execute(context.Background(), &Request{Origin: at(0, 0), TimeRange: "1000-1100"})
	require.NoError(t, err)

	assert.Equal(t, []string{"NEAR", "MID"}, ids(resp))
	assert.Equal(t, 2.0, resp.Venues[0].Distance)
	assert.Equal(t, 3.0, resp.Venues[1].Distance)
}

func TestExecuteExhaustsCandidates(t *testing.T) {
	uc, _ := newUseCase(t, 10)

	resp, err := uc.Execute(context.Background(), &Request{Origin: at(0, 0), TimeRange: "1000-1100"})
	require.NoError(t, err)

	// без координат аудитория не ранжируется
	assert.Equal(t, []string{"NEAR", "MID", "FAR"}, ids(resp))
}

func TestExecuteWithSessionIsReenterable(t *testing.T) {
	ctx := context.Background()
	uc, sessions := newUseCase(t, 1)
	require.NoError(t, sessions.Save(ctx, &domain.NearbySession{ID: "s-1", Origin: domain.Coordinates{Lat: 0, Long: 0}}))

	first, err := uc.Execute(ctx, &Request{SessionID: "s-1", TimeRange: "1000-1100"})
	require.NoError(t, err)
	assert.Equal(t, []string{"NEAR"}, ids(first))

	second, err := uc.Execute(ctx, &Request{SessionID: "s-1", TimeRange: "0800-0900"})
	require.NoError(t, err)
	assert.Equal(t, []string{"NEAR-BUSY"}, ids(second))
}

func TestExecuteSessionNotFound(t *testing.T) {
	uc, _ := newUseCase(t, 1)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", TimeRange: "1000-1100"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecuteValidation(t *testing.T) {
	uc, _ := newUseCase(t, 1)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "no origin", req: &Request{TimeRange: "1000-1100"}, wantErr: ErrInvalidInput},
		{name: "both origin and session", req: &Request{SessionID: "s-1", Origin: at(0, 0), TimeRange: "1000-1100"}, wantErr: ErrInvalidInput},
		{name: "origin out of range", req: &Request{Origin: at(100, 0), TimeRange: "1000-1100"}, wantErr: ErrInvalidInput},
		{name: "bad time range", req: &Request{Origin: at(0, 0), TimeRange: "1000"}, wantErr: ErrInvalidTimeRange},
		{name: "inverted time range", req: &Request{Origin: at(0, 0), TimeRange: "1100-1000"}, wantErr: ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
