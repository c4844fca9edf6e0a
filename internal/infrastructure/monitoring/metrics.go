package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the backend.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsActive  prometheus.Gauge

	// Generation metrics
	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec

	// Archive metrics
	ArchiveOpsTotal *prometheus.CounterVec

	// WebSocket metrics
	WSConnectionsActive prometheus.Gauge
	WSMessagesTotal     *prometheus.CounterVec

	// System metrics
	UptimeSeconds prometheus.Gauge

	startTime time.Time
}

// New creates and registers all metrics with the default registry.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forgeui_http_requests_total",
				Help: "Total HTTP requests by method, path, and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "forgeui_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forgeui_http_requests_active",
				Help: "Currently active HTTP requests",
			},
		),
		GenerationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forgeui_generations_total",
				Help: "Total component generations by target and status",
			},
			[]string{"target", "status"},
		),
		GenerationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "forgeui_generation_duration_seconds",
				Help:    "Component generation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
			},
			[]string{"target"},
		),
		ArchiveOpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forgeui_archive_operations_total",
				Help: "Total archive operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		WSConnectionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forgeui_ws_connections_active",
				Help: "Currently active websocket connections",
			},
		),
		WSMessagesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forgeui_ws_messages_total",
				Help: "Total websocket messages by type and direction",
			},
			[]string{"type", "direction"},
		),
		UptimeSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "forgeui_uptime_seconds",
				Help: "Time since server start in seconds",
			},
		),
		startTime: time.Now(),
	}

	go m.trackUptime()

	return m
}

// RecordGeneration records one generation attempt.
func (m *Metrics) RecordGeneration(target string, duration time.Duration, ok bool) {
	status := "success"
	if !ok {
		status = "error"
	}
	m.GenerationsTotal.WithLabelValues(target, status).Inc()
	m.GenerationDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// RecordArchiveOp records one archive operation.
func (m *Metrics) RecordArchiveOp(operation string, ok bool) {
	status := "success"
	if !ok {
		status = "error"
	}
	m.ArchiveOpsTotal.WithLabelValues(operation, status).Inc()
}

func (m *Metrics) trackUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		m.UptimeSeconds.Set(time.Since(m.startTime).Seconds())
	}
}
