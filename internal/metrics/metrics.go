// Package metrics provides Prometheus metrics collection for the message service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// LookupsTotal counts message lookups by served locale and outcome.
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xslt_message_lookups_total",
			Help: "Total number of message lookups",
		},
		[]string{"locale", "status"},
	)

	// LookupEventsDropped counts lookup events discarded before reaching storage.
	LookupEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xslt_message_lookup_events_dropped_total",
			Help: "Lookup events dropped by the audit recorder",
		},
		[]string{"reason"},
	)

	// CatalogIssues reports the verification issues found at startup, by kind.
	CatalogIssues = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "xslt_message_catalog_issues",
			Help: "Catalog verification issues by kind",
		},
		[]string{"kind"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordLookup records the outcome of one message lookup.
func RecordLookup(locale, status string) {
	LookupsTotal.WithLabelValues(locale, status).Inc()
}

// RecordDroppedLookupEvent records a lookup event that was not stored.
func RecordDroppedLookupEvent(reason string) {
	LookupEventsDropped.WithLabelValues(reason).Inc()
}

// SetCatalogIssues replaces the per-kind issue gauges.
func SetCatalogIssues(counts map[string]int) {
	CatalogIssues.Reset()
	for kind, n := range counts {
		CatalogIssues.WithLabelValues(kind).Set(float64(n))
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState records the current state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
