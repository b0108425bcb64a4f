package telemetry

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type AppMetrics struct {
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	activeConnections  prometheus.Gauge
	memoryUsage        prometheus.Gauge
	goroutines         prometheus.Gauge
	resourceOperations *prometheus.CounterVec
	databaseOperations *prometheus.CounterVec
}

func NewAppMetrics(registry prometheus.Registerer) *AppMetrics {
	metrics := &AppMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		activeConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_active_connections",
				Help: "Number of in-flight HTTP requests",
			},
		),
		memoryUsage: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "memory_usage_bytes",
				Help: "Memory usage in bytes",
			},
		),
		goroutines: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "goroutines_total",
				Help: "Number of goroutines",
			},
		),
		resourceOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resource_operations_total",
				Help: "Total number of resource lifecycle events",
			},
			[]string{"resource", "event"},
		),
		databaseOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "database_operations_total",
				Help: "Total number of database operations",
			},
			[]string{"operation", "table"},
		),
	}

	registry.MustRegister(
		metrics.requestDuration,
		metrics.requestTotal,
		metrics.activeConnections,
		metrics.memoryUsage,
		metrics.goroutines,
		metrics.resourceOperations,
		metrics.databaseOperations,
	)

	return metrics
}

func (m *AppMetrics) RecordRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)

	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
}

func (m *AppMetrics) IncrementActiveConnections(ctx context.Context) {
	m.activeConnections.Inc()
}

func (m *AppMetrics) DecrementActiveConnections(ctx context.Context) {
	m.activeConnections.Dec()
}

func (m *AppMetrics) RecordResourceOperation(ctx context.Context, resource, event string) {
	m.resourceOperations.WithLabelValues(resource, event).Inc()
}

func (m *AppMetrics) RecordDatabaseOperation(ctx context.Context, operation, table string) {
	m.databaseOperations.WithLabelValues(operation, table).Inc()
}

// StartSystemMetrics samples memory and goroutine gauges until ctx is done.
func (m *AppMetrics) StartSystemMetrics(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sample()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *AppMetrics) sample() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m.memoryUsage.Set(float64(memStats.Alloc))
	m.goroutines.Set(float64(runtime.NumGoroutine()))
}
