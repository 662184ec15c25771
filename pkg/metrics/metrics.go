package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса.
// Методы допускают nil-получатель: при выключенных метриках вызовы ничего не делают.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	queriesTotal        *prometheus.CounterVec
	snapshotVenues      prometheus.Gauge
	snapshotReloads     *prometheus.CounterVec
	snapshotLoadedAt    prometheus.Gauge
	sessionsCreated     prometheus.Counter
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "venue_queries_total",
			Help:        "Availability queries by kind and outcome",
			ConstLabels: labels,
		}, []string{"query", "outcome"}),
		snapshotVenues: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "snapshot_venues",
			Help:        "Number of venues in the active snapshot",
			ConstLabels: labels,
		}),
		snapshotReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "snapshot_reloads_total",
			Help:        "Snapshot reload attempts by result",
			ConstLabels: labels,
		}, []string{"result"}),
		snapshotLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "snapshot_loaded_timestamp_seconds",
			Help:        "Unix time of the last successful snapshot load",
			ConstLabels: labels,
		}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "nearby_sessions_created_total",
			Help:        "Number of nearby search sessions started",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.queriesTotal,
		m.snapshotVenues,
		m.snapshotReloads,
		m.snapshotLoadedAt,
		m.sessionsCreated,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP-запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery фиксирует запрос к движку доступности
func (m *Metrics) ObserveQuery(query, outcome string) {
	if m == nil {
		return
	}
	m.queriesTotal.WithLabelValues(query, outcome).Inc()
}

// SnapshotLoaded вызывается после успешной подмены снапшота
func (m *Metrics) SnapshotLoaded(venues int) {
	if m == nil {
		return
	}
	m.snapshotVenues.Set(float64(venues))
	m.snapshotReloads.WithLabelValues("ok").Inc()
	m.snapshotLoadedAt.SetToCurrentTime()
}

// SnapshotRejected вызывается, когда снапшот не загрузился или не прошел проверку
func (m *Metrics) SnapshotRejected() {
	if m == nil {
		return
	}
	m.snapshotReloads.WithLabelValues("rejected").Inc()
}

// SessionCreated вызывается при создании сессии поиска рядом
func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
}
