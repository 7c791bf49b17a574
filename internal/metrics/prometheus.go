// Package metrics exposes dashboard counters and latencies to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements the loader and service recorder interfaces.
type Recorder struct {
	loads         *prometheus.CounterVec
	loadDuration  prometheus.Histogram
	buildDuration prometheus.Histogram
	cacheRequests *prometheus.CounterVec
	snapshotDays  prometheus.Gauge
}

// New registers the dashboard metrics with reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		loads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_snapshot_loads_total",
				Help: "Snapshot load attempts by result",
			},
			[]string{"result"},
		),
		loadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_snapshot_load_duration_seconds",
				Help:    "Time spent fetching and decoding the snapshot",
				Buckets: prometheus.DefBuckets,
			},
		),
		buildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_seconds",
				Help:    "Time spent deriving the dashboard view model",
				Buckets: prometheus.DefBuckets,
			},
		),
		cacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_cache_requests_total",
				Help: "View model cache lookups by result",
			},
			[]string{"result"},
		),
		snapshotDays: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_snapshot_days",
				Help: "Trading days in the loaded snapshot",
			},
		),
	}
}

// ObserveLoad records the single snapshot load.
func (r *Recorder) ObserveLoad(result string, elapsed time.Duration) {
	r.loads.WithLabelValues(result).Inc()
	r.loadDuration.Observe(elapsed.Seconds())
}

// ObserveBuild records one view model derivation.
func (r *Recorder) ObserveBuild(days int, elapsed time.Duration) {
	r.buildDuration.Observe(elapsed.Seconds())
	r.snapshotDays.Set(float64(days))
}

// CacheRequest counts a cache lookup; result is "hit", "miss" or "error".
func (r *Recorder) CacheRequest(result string) {
	r.cacheRequests.WithLabelValues(result).Inc()
}
