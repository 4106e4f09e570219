package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestManager_counters(t *testing.T) {
	m := NewManager()

	m.RecordRequest(OutcomeSuccess)
	m.RecordRequest(OutcomeSuccess)
	m.RecordRequest(OutcomeOverload)
	m.RecordRetry()
	m.RecordReauth()
	m.RecordCacheHit()
	m.RecordCacheMiss()
	m.RecordCacheMiss()
	m.RecordCacheError()
	m.ObserveRequestDuration(150 * time.Millisecond)

	tests := map[string]struct {
		c    prometheus.Collector
		want float64
	}{
		"success":      {c: m.requests.WithLabelValues(OutcomeSuccess), want: 2},
		"overload":     {c: m.requests.WithLabelValues(OutcomeOverload), want: 1},
		"api error":    {c: m.requests.WithLabelValues(OutcomeAPIError), want: 0},
		"retries":      {c: m.retries, want: 1},
		"reauths":      {c: m.reauths, want: 1},
		"cache hits":   {c: m.cacheHits, want: 1},
		"cache misses": {c: m.cacheMisses, want: 2},
		"cache errors": {c: m.cacheErrors, want: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := testutil.ToFloat64(tc.c); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if n := testutil.CollectAndCount(m.requestLatency); n != 1 {
		t.Errorf("expected the latency histogram to be collected, got %d metrics", n)
	}
}

func TestManager_nilIsNoop(t *testing.T) {
	var m *Manager

	// None of these should panic
	m.RecordRequest(OutcomeSuccess)
	m.RecordRetry()
	m.RecordReauth()
	m.RecordCacheHit()
	m.RecordCacheMiss()
	m.RecordCacheError()
	m.ObserveRequestDuration(time.Second)
}

func TestManager_options(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(WithNamespace("test"), WithSubsystem("pipeline"), WithRegistry(reg),
		WithHistogramBuckets([]float64{0.1, 1}))

	if m.Registry() != reg {
		t.Fatal("expected the given registry to be used")
	}

	m.RecordRetry()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("error gathering metrics: %v", err)
	}

	found := false
	for _, f := range families {
		if f.GetName() == "test_pipeline_retries_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected test_pipeline_retries_total to be registered")
	}

	// Two managers with their own registries must not collide
	NewManager()
	NewManager()
}
