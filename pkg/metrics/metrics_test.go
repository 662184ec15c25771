package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewWithRegistry("venue-finder", prometheus.NewRegistry())

	m.SnapshotLoaded(42)
	m.SnapshotRejected()
	m.ObserveQuery("venue_status", "found")
	m.ObserveHTTP(http.MethodGet, "/api/v1/venues/{venueId}", http.StatusOK, 15*time.Millisecond)
	m.SessionCreated()

	assert.Equal(t, 42.0, testutil.ToFloat64(m.snapshotVenues))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotReloads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotReloads.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queriesTotal.WithLabelValues("venue_status", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/venues/{venueId}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsCreated))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SnapshotLoaded(1)
		m.SnapshotRejected()
		m.ObserveQuery("venue_status", "found")
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.SessionCreated()
	})
}
