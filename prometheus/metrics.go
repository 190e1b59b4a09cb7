package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/amit-00/shop-kit/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Tenant resolution metrics
	TenantResolvedCounter prometheus.CounterVec
	TenantFallbackCounter prometheus.Counter

	// Cart metrics
	CartOperationsCounter prometheus.CounterVec

	// Search metrics
	SearchQueriesCounter prometheus.Counter
	SearchDuration       prometheus.Histogram

	// Storage operation metrics
	StorageOperationDuration prometheus.HistogramVec
	StorageErrorsCounter     prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Tenant resolution metrics
	TenantResolvedCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_tenant_resolved_total",
			Help: "Total number of requests resolved per tenant",
		},
		[]string{"tenant"},
	)

	TenantFallbackCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_tenant_fallback_total",
			Help: "Total number of requests resolved to the default tenant",
		},
	)

	// Cart metrics
	CartOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	// Search metrics
	SearchQueriesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_search_queries_total",
			Help: "Total number of product search queries",
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_search_duration_seconds",
			Help:    "Duration of product search queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Storage operation metrics
	StorageOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_storage_operation_duration_seconds",
			Help:    "Duration of cart storage operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	StorageErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_storage_errors_total",
			Help: "Total number of cart storage failures",
		},
		[]string{"operation_type"},
	)
}

// TrackStorageOperation returns a function that records the duration of a storage operation
func TrackStorageOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		StorageOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	CartOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordTenantResolution increments the per-tenant resolution counter
// and the fallback counter when the default tenant was used.
func RecordTenantResolution(tenant string, fallback bool) {
	TenantResolvedCounter.WithLabelValues(tenant).Inc()
	if fallback {
		TenantFallbackCounter.Inc()
	}
}

// RecordSearchQuery observes one search call and its duration
func RecordSearchQuery(duration time.Duration) {
	SearchQueriesCounter.Inc()
	SearchDuration.Observe(duration.Seconds())
}
