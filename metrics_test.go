package goTokenCache

import (
	"context"
	"testing"
	"time"
)

func TestMetricsDisabledIsNoOp(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricCacheHit)

	if m.Value(MetricCacheHit) != 0 {
		t.Fatal("disabled metrics must not count")
	}

	s := m.Snapshot()
	if len(s.Counters) != 0 || len(s.Histograms) != 0 {
		t.Fatalf("disabled snapshot must be empty, got %+v", s)
	}
}

func TestMetricsNilReceiverSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricCacheHit)
	m.Observe(MetricQueryLatency, time.Millisecond)
	if m.Value(MetricCacheHit) != 0 {
		t.Fatal("nil metrics must read zero")
	}
}

func TestMetricsCountersAndHistogram(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Inc(MetricCacheWrite)
	m.Inc(MetricCacheWrite)
	m.Observe(MetricQueryLatency, 3*time.Millisecond)
	m.Observe(MetricQueryLatency, 600*time.Millisecond)

	if got := m.Value(MetricCacheWrite); got != 2 {
		t.Fatalf("expected 2 writes, got %d", got)
	}

	s := m.Snapshot()
	buckets := s.Histograms[MetricQueryLatency]
	if len(buckets) != histBucketCount {
		t.Fatalf("expected %d buckets, got %d", histBucketCount, len(buckets))
	}
	if buckets[0] != 1 || buckets[7] != 1 {
		t.Fatalf("unexpected bucket distribution %v", buckets)
	}
}

func TestBucketIndexBoundaries(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{time.Millisecond, 0},
		{5 * time.Millisecond, 0},
		{10 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{50 * time.Millisecond, 3},
		{100 * time.Millisecond, 4},
		{250 * time.Millisecond, 5},
		{500 * time.Millisecond, 6},
		{time.Second, 7},
	}

	for _, tt := range tests {
		if got := bucketIndex(tt.d); got != tt.want {
			t.Fatalf("bucketIndex(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestCacheOperationsDriveMetrics(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, func(cfg *Config) {
		cfg.Metrics.Enabled = true
	})

	if err := cache.Set(ctx, "idtoken", "v", false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := cache.Get(ctx, "idtoken", false); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := cache.Get(ctx, "absent", false); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	s := cache.MetricsSnapshot()
	if s.Counters[MetricCacheWrite] != 1 {
		t.Fatalf("expected one write, got %d", s.Counters[MetricCacheWrite])
	}
	if s.Counters[MetricDualWrite] != 1 {
		t.Fatalf("expected one dual write, got %d", s.Counters[MetricDualWrite])
	}
	if s.Counters[MetricCacheHit] != 1 || s.Counters[MetricCacheMiss] != 1 {
		t.Fatalf("expected one hit and one miss, got %d/%d",
			s.Counters[MetricCacheHit], s.Counters[MetricCacheMiss])
	}
}
