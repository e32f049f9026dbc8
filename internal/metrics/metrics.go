// Package metrics exposes Prometheus instrumentation for a docking run:
// scoring-function evaluation counts, transform cycle timings, and pose
// cache hit/miss rates. A Noop implementation satisfies the same
// interface so the CLI can run with metrics.enabled=false.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dockvedic"

// Recorder is the instrumentation surface the search loop and cache layer
// call into; swap the Prometheus-backed implementation for Noop when
// metrics are disabled rather than sprinkling nil checks at call sites.
type Recorder interface {
	// ObserveSFEvaluation records one scoring-function evaluation, tagged
	// by the root term's class and whether it completed or errored.
	ObserveSFEvaluation(sfClass string, durationSeconds float64, success bool)

	// ObserveTransformCycle records one transform step's wall-clock cost.
	ObserveTransformCycle(transformClass string, durationSeconds float64)

	// SetPopulationBestScore reports the current best genome score.
	SetPopulationBestScore(score float64)

	// ObserveCacheAccess records a pose-cache lookup outcome.
	ObserveCacheAccess(hit bool)

	// IncPosesWritten counts one pose written to a sink.
	IncPosesWritten()
}

type prometheusRecorder struct {
	sfEvalDuration        *prometheus.HistogramVec
	sfEvalTotal           *prometheus.CounterVec
	transformCycleDuration *prometheus.HistogramVec
	populationBestScore   prometheus.Gauge
	cacheAccessTotal      *prometheus.CounterVec
	posesWrittenTotal     prometheus.Counter
}

// New creates a Prometheus-backed Recorder and registers its collectors
// with reg. A nil reg registers against prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &prometheusRecorder{
		sfEvalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sf_evaluation_duration_seconds",
			Help:      "Duration of a scoring-function evaluation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"sf_class"}),
		sfEvalTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sf_evaluation_total",
			Help:      "Total number of scoring-function evaluations.",
		}, []string{"sf_class", "status"}),
		transformCycleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transform_cycle_duration_seconds",
			Help:      "Duration of one transform step's Execute call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"transform_class"}),
		populationBestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "population_best_score",
			Help:      "Best genome score seen so far in the current run.",
		}),
		cacheAccessTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_access_total",
			Help:      "Total number of pose-cache lookups by outcome.",
		}, []string{"result"}),
		posesWrittenTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poses_written_total",
			Help:      "Total number of poses written to an output sink.",
		}),
	}

	collectors := []prometheus.Collector{
		r.sfEvalDuration,
		r.sfEvalTotal,
		r.transformCycleDuration,
		r.populationBestScore,
		r.cacheAccessTotal,
		r.posesWrittenTotal,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *prometheusRecorder) ObserveSFEvaluation(sfClass string, durationSeconds float64, success bool) {
	status := "ok"
	if !success {
		status = "error"
	}
	r.sfEvalDuration.WithLabelValues(sfClass).Observe(durationSeconds)
	r.sfEvalTotal.WithLabelValues(sfClass, status).Inc()
}

func (r *prometheusRecorder) ObserveTransformCycle(transformClass string, durationSeconds float64) {
	r.transformCycleDuration.WithLabelValues(transformClass).Observe(durationSeconds)
}

func (r *prometheusRecorder) SetPopulationBestScore(score float64) {
	r.populationBestScore.Set(score)
}

func (r *prometheusRecorder) ObserveCacheAccess(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheAccessTotal.WithLabelValues(result).Inc()
}

func (r *prometheusRecorder) IncPosesWritten() {
	r.posesWrittenTotal.Inc()
}

// Noop is a Recorder that discards every observation.
type Noop struct{}

func (Noop) ObserveSFEvaluation(string, float64, bool) {}
func (Noop) ObserveTransformCycle(string, float64)     {}
func (Noop) SetPopulationBestScore(float64)            {}
func (Noop) ObserveCacheAccess(bool)                   {}
func (Noop) IncPosesWritten()                          {}

// InMemory is a Recorder for tests: it records plain counters without
// depending on the Prometheus client's internal registry state.
type InMemory struct {
	sfEvalCount        atomic.Int64
	sfEvalErrors       atomic.Int64
	transformCycles    atomic.Int64
	cacheHits          atomic.Int64
	cacheMisses        atomic.Int64
	posesWritten       atomic.Int64
	lastBestScore      atomic.Value
}

func (m *InMemory) ObserveSFEvaluation(_ string, _ float64, success bool) {
	m.sfEvalCount.Add(1)
	if !success {
		m.sfEvalErrors.Add(1)
	}
}

func (m *InMemory) ObserveTransformCycle(string, float64) {
	m.transformCycles.Add(1)
}

func (m *InMemory) SetPopulationBestScore(score float64) {
	m.lastBestScore.Store(score)
}

func (m *InMemory) ObserveCacheAccess(hit bool) {
	if hit {
		m.cacheHits.Add(1)
	} else {
		m.cacheMisses.Add(1)
	}
}

func (m *InMemory) IncPosesWritten() {
	m.posesWritten.Add(1)
}

// SFEvalCount returns the number of evaluations observed so far.
func (m *InMemory) SFEvalCount() int64 { return m.sfEvalCount.Load() }

// SFEvalErrors returns the number of failed evaluations observed so far.
func (m *InMemory) SFEvalErrors() int64 { return m.sfEvalErrors.Load() }

// TransformCycles returns the number of transform cycles observed so far.
func (m *InMemory) TransformCycles() int64 { return m.transformCycles.Load() }

// CacheHits returns the number of cache hits observed so far.
func (m *InMemory) CacheHits() int64 { return m.cacheHits.Load() }

// CacheMisses returns the number of cache misses observed so far.
func (m *InMemory) CacheMisses() int64 { return m.cacheMisses.Load() }

// PosesWritten returns the number of poses written so far.
func (m *InMemory) PosesWritten() int64 { return m.posesWritten.Load() }

// LastBestScore returns the most recently recorded best score, or 0 if
// none has been recorded yet.
func (m *InMemory) LastBestScore() float64 {
	v := m.lastBestScore.Load()
	if v == nil {
		return 0
	}
	return v.(float64)
}

var (
	_ Recorder = (*prometheusRecorder)(nil)
	_ Recorder = Noop{}
	_ Recorder = (*InMemory)(nil)
)
