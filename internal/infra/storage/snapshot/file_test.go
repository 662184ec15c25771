package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

const sampleSnapshot = `{
    "venues": {
        "LT19": {
            "lat": 1.2953,
            "long": 103.7745,
            "location": "SOC",
            "availability": {
                "Monday": {"1000": "occupied", "1030": "occupied", "1100": ""},
                "Friday": {}
            }
        },
        "COM1-0203": {
            "lat": 1.2949,
            "long": 103.7737,
            "location": "SOC"
        },
        "E-LAB": {
            "location": "ENGIN",
            "availability": {"Tuesday": {"0800": true, "0830": false, "0900": 1, "0930": null}}
        }
    }
}`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venues.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFileRepositoryLoad(t *testing.T) {
	path := writeFile(t, sampleSnapshot)

	s, err := NewFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, s.Venues, 3)

	// порядок по идентификатору
	assert.Equal(t, "COM1-0203", s.Venues[0].ID)
	assert.Equal(t, "E-LAB", s.Venues[1].ID)
	assert.Equal(t, "LT19", s.Venues[2].ID)

	com := s.Venues[0]
	assert.False(t, com.HasAvailability())
	require.NotNil(t, com.Coordinates)
	assert.Equal(t, 1.2949, com.Coordinates.Lat)

	lab := s.Venues[1]
	assert.Nil(t, lab.Coordinates)
	tuesday, ok := lab.ScheduleFor(time.Tuesday)
	require.True(t, ok)
	assert.True(t, tuesday.IsOccupied(8*60))
	assert.False(t, tuesday.IsOccupied(8*60+30))
	assert.True(t, tuesday.IsOccupied(9*60))
	assert.False(t, tuesday.IsOccupied(9*60+30))

	lt := s.Venues[2]
	assert.Equal(t, domain.LocationSOC, lt.Location)
	monday, ok := lt.ScheduleFor(time.Monday)
	require.True(t, ok)
	assert.Len(t, monday, 2)
	friday, ok := lt.ScheduleFor(time.Friday)
	require.True(t, ok)
	assert.Empty(t, friday)
	_, ok = lt.ScheduleFor(time.Sunday)
	assert.False(t, ok)
}

func TestFileRepositoryLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "not json", body: "venues", wantErr: ErrDecode},
		{name: "no venues", body: `{}`, wantErr: domain.ErrCorruptSnapshot},
		{name: "one coordinate", body: `{"venues": {"LT19": {"lat": 1.29}}}`, wantErr: domain.ErrCorruptSnapshot},
		{name: "unknown day", body: `{"venues": {"LT19": {"availability": {"Funday": {}}}}}`, wantErr: domain.ErrCorruptSnapshot},
		{name: "bad slot", body: `{"venues": {"LT19": {"availability": {"Monday": {"1015": "occupied"}}}}}`, wantErr: domain.ErrCorruptSnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileRepository(writeFile(t, tt.body)).Load(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := NewFileRepository(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	assert.ErrorIs(t, err, ErrReadFile)
}

func TestFileRepositorySaveThenLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "venues.json")
	repo := NewFileRepository(path)
	generatedAt := time.Date(2024, 3, 4, 2, 0, 0, 0, time.UTC)

	in := &domain.Snapshot{
		GeneratedAt: generatedAt,
		Venues: []*domain.Venue{
			{ID: "B", Location: domain.LocationFASS, Coordinates: &domain.Coordinates{Lat: 1, Long: 2},
				Availability: domain.WeeklyAvailability{time.Wednesday: domain.NewDaySchedule(600, 630)}},
			{ID: "A", Location: domain.LocationBIZ},
		},
	}
	require.NoError(t, repo.Save(ctx, in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"1000": "occupied"`)
	assert.Contains(t, string(raw), `"Wednesday"`)

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, out.GeneratedAt.Equal(generatedAt))
	require.Len(t, out.Venues, 2)
	assert.Equal(t, "A", out.Venues[0].ID)
	assert.Nil(t, out.Venues[0].Availability)
	assert.Equal(t, in.Venues[0].Availability, out.Venues[1].Availability)
}
