// Package metrics provides Prometheus metrics for the cartola request pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeCached    = "cached"
	OutcomeAPIError  = "api_error"
	OutcomeGameOver  = "game_over"
	OutcomeOverload  = "overload"
	OutcomeCancelled = "cancelled"
)

// Manager owns the pipeline metrics. A nil *Manager is valid and records
// nothing, so callers never need to check whether metrics are enabled.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	requests       *prometheus.CounterVec
	retries        prometheus.Counter
	reauths        prometheus.Counter
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	cacheErrors    prometheus.Counter
	requestLatency prometheus.Histogram
}

// NewManager creates a Manager registered on its own registry unless
// WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "cartolafc",
		subsystem:        "client",
		histogramBuckets: prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.requests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Total number of fetch calls by outcome",
	}, []string{"outcome"})

	m.retries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "retries_total",
		Help:      "Total number of attempts that failed with a transient error",
	})

	m.reauths = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reauthentications_total",
		Help:      "Total number of re-authentications after an unauthorized response",
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Total number of responses served from the cache",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Total number of cache lookups that missed",
	})

	m.cacheErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_errors_total",
		Help:      "Total number of failed cache reads and writes",
	})

	m.requestLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "request_duration_seconds",
		Help:      "Duration of fetch calls that went to the network, retries included",
		Buckets:   m.histogramBuckets,
	})
}

func (m *Manager) RecordRequest(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

func (m *Manager) RecordRetry() {
	if m == nil {
		return
	}
	m.retries.Inc()
}

func (m *Manager) RecordReauth() {
	if m == nil {
		return
	}
	m.reauths.Inc()
}

func (m *Manager) RecordCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Manager) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

func (m *Manager) RecordCacheError() {
	if m == nil {
		return
	}
	m.cacheErrors.Inc()
}

func (m *Manager) ObserveRequestDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.requestLatency.Observe(d.Seconds())
}

// Registry returns the registry the metrics are registered on, e.g. to serve
// them with promhttp.HandlerFor.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
