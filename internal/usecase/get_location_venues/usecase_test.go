package get_location_venues

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/service/availability"
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

func busy(t *testing.T, hhmm ...string) domain.WeeklyAvailability {
	t.Helper()
	slots := make([]domain.Slot, 0, len(hhmm))
	for _, s := range hhmm {
		slot, err := domain.ParseSlot(s)
		require.NoError(t, err)
		slots = append(slots, slot)
	}
	return domain.WeeklyAvailability{time.Monday: domain.NewDaySchedule(slots...)}
}

func newUseCase(t *testing.T, numResults int, venues ...*domain.Venue) *UseCase {
	t.Helper()
	idx, err := schedule.NewIndex(&domain.Snapshot{Venues: venues})
	require.NoError(t, err)

	uc := NewUseCase(&stubIndex{idx: idx}, availability.NewEngine(sgt), nopObserver{}, nopLogger{}, numResults)
	// понедельник 20:00, до 21:30 включительно четыре слота
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 4, 20, 0, 0, 0, sgt)}
	return uc
}

func TestExecuteSortsByFreeDuration(t *testing.T) {
	uc := newUseCase(t, 10,
		&domain.Venue{ID: "COM1-0201", Location: domain.LocationSOC, Availability: busy(t, "2100")},
		&domain.Venue{ID: "COM1-0202", Location: domain.LocationSOC, Availability: busy(t)},
		&domain.Venue{ID: "COM1-0203", Location: domain.LocationSOC, Availability: busy(t, "2000")},
		&domain.Venue{ID: "COM1-0204", Location: domain.LocationSOC, Availability: busy(t, "2130")},
		&domain.Venue{ID: "COM1-0205", Location: domain.LocationSOC, Availability: busy(t, "2100")},
		&domain.Venue{ID: "LT19", Location: domain.LocationBIZ, Availability: busy(t)},
	)

	resp, err := uc.Execute(context.Background(), &Request{Location: "soc"})
	require.NoError(t, err)
	assert.Equal(t, domain.LocationSOC, resp.Location)

	ids := make([]string, 0, len(resp.Venues))
	for _, v := range resp.Venues {
		ids = append(ids, v.VenueID)
	}
	assert.Equal(t, []string{"COM1-0202", "COM1-0204", "COM1-0201", "COM1-0205"}, ids)
	assert.Equal(t, 2.0, resp.Venues[0].FreeFor.Hours())
	assert.Equal(t, 1.5, resp.Venues[1].FreeFor.Hours())
	assert.Equal(t, 1.0, resp.Venues[2].FreeFor.Hours())
	assert.Equal(t, resp.Venues[2].FreeFor, resp.Venues[3].FreeFor)
}

func TestExecuteCapsResults(t *testing.T) {
	uc := newUseCase(t, 2,
		&domain.Venue{ID: "A1", Location: domain.LocationFOS, Availability: busy(t, "2100")},
		&domain.Venue{ID: "A2", Location: domain.LocationFOS, Availability: busy(t)},
		&domain.Venue{ID: "A3", Location: domain.LocationFOS, Availability: busy(t)},
	)

	resp, err := uc.Execute(context.Background(), &Request{Location: "FOS"})
	require.NoError(t, err)
	require.Len(t, resp.Venues, 2)
	assert.Equal(t, "A2", resp.Venues[0].VenueID)
	assert.Equal(t, "A3", resp.Venues[1].VenueID)
}

func TestExecuteSkipsVenuesWithoutRecord(t *testing.T) {
	uc := newUseCase(t, 10, &domain.Venue{ID: "NOREC", Location: domain.LocationLAW})

	resp, err := uc.Execute(context.Background(), &Request{Location: "LAW"})
	require.NoError(t, err)
	assert.Empty(t, resp.Venues)
}

func TestExecuteInvalidLocation(t *testing.T) {
	uc := newUseCase(t, 10)

	_, err := uc.Execute(context.Background(), &Request{Location: "MARS"})
	assert.ErrorIs(t, err, ErrInvalidLocation)
}
