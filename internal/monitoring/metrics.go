package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Store metrics
	StoreOps *prometheus.CounterVec

	// Registry metrics
	SessionsTotal prometheus.Gauge
	RenamesTotal  prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSEvents      *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time
}

// NewMetrics creates a metrics collector backed by its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sessionfs_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sessionfs_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		StoreOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sessionfs_store_operations_total",
				Help: "Store operations by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		SessionsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "sessionfs_sessions_total",
				Help: "Number of session records in the registry",
			},
		),
		RenamesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sessionfs_renames_total",
				Help: "Total number of successful session renames",
			},
		),
		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "sessionfs_ws_connections",
				Help: "Active WebSocket connections",
			},
		),
		WSEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sessionfs_ws_events_total",
				Help: "Events forwarded to WebSocket clients by type",
			},
			[]string{"type"},
		),
	}

	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "sessionfs_uptime_seconds",
			Help: "Seconds since process start",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordStoreOp records one store operation outcome.
func (m *Metrics) RecordStoreOp(operation, status string) {
	m.StoreOps.WithLabelValues(operation, status).Inc()
}

// Handler returns a gin handler serving the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
