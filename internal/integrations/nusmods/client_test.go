package nusmods

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/venues.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"COM1-0203": {"roomName": "Seminar Room 3", "floor": 2, "location": {"x": 103.7737, "y": 1.2948}},
			"Home": {"roomName": "Nowhere"}
		}`))
	})
	mux.HandleFunc("/venueInformation.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"COM1-0203": [{"day": "Monday", "classes": [], "availability": {"1000": "occupied", "1030": "occupied"}}]
		}`))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"COM1-0203": [`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCatalog(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL+"/venues.json", srv.URL+"/venueInformation.json", time.Second, nopLogger{})

	catalog, err := c.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	com := catalog["COM1-0203"]
	require.NotNil(t, com.Location)
	assert.Equal(t, 103.7737, *com.Location.X)
	assert.Equal(t, 1.2948, *com.Location.Y)
	assert.Nil(t, catalog["Home"].Location)
}

func TestFetchAvailability(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL+"/venues.json", srv.URL+"/venueInformation.json", time.Second, nopLogger{})

	feed, err := c.FetchAvailability(context.Background())
	require.NoError(t, err)
	require.Len(t, feed["COM1-0203"], 1)
	assert.Equal(t, "Monday", feed["COM1-0203"][0].Day)
	assert.Equal(t, "occupied", feed["COM1-0203"][0].Availability["1000"])
}

func TestFetchErrors(t *testing.T) {
	srv := newServer(t)

	c := NewClient(srv.URL+"/missing.json", srv.URL+"/broken.json", time.Second, nopLogger{})

	_, err := c.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = c.FetchAvailability(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)

	c = NewClient("http://127.0.0.1:0/venues.json", "", time.Second, nopLogger{})
	_, err = c.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
