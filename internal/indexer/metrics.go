package indexer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics mirrors the clearing node's own metrics.go pattern: one struct of
// promauto-registered collectors built once per Client.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RetriesTotal     *prometheus.CounterVec
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
}

// NewMetrics registers the indexer client's collectors against registry, or
// the default global registerer if nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_requests_total",
			Help: "Total indexer HTTP requests by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "indexer_request_duration_seconds",
			Help:    "Indexer HTTP request latency by endpoint",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		RetriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_retries_total",
			Help: "Total indexer request retries by endpoint",
		}, []string{"endpoint"}),
		CacheHitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_cache_hits_total",
			Help: "Total indexer TTL cache hits by cache name",
		}, []string{"cache"}),
		CacheMissesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_cache_misses_total",
			Help: "Total indexer TTL cache misses by cache name",
		}, []string{"cache"}),
	}
}
