package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shanecelis/secret-santa/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	solveDuration      *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec
	cacheLookups       *prometheus.CounterVec
	searchNodes        prometheus.Histogram
	backtracks         prometheus.Histogram
	solutionsSampled   prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "santa" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "santa"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of Solve calls by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"outcome"})

		p.validationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "validation_failures_total",
			Help:      "Plans rejected before search, by conflict kind.",
		}, []string{"kind"})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "ruleset_cache_lookups_total",
			Help:      "Compiled-ruleset cache lookups by result (hit,miss).",
		}, []string{"result"})

		p.searchNodes = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "nodes",
			Help:      "Search nodes visited per Solve call.",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 12),
		})

		p.backtracks = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "backtracks",
			Help:      "Backtrack steps taken per Solve call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		})

		p.solutionsSampled = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "solutions_sampled",
			Help:      "Distinct solutions gathered before one was chosen.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 100},
		})

		p.reg.MustRegister(
			p.solveDuration,
			p.validationFailures,
			p.cacheLookups,
			p.searchNodes,
			p.backtracks,
			p.solutionsSampled,
		)
	})
}

// RecordSolveDuration records the wall time of one Solve call.
func (p *PrometheusCollector) RecordSolveDuration(duration float64, outcome string) {
	p.ensureRegistered()
	p.solveDuration.WithLabelValues(outcome).Observe(duration)
}

// RecordValidationFailure records a plan rejected before search.
func (p *PrometheusCollector) RecordValidationFailure(kind string) {
	p.ensureRegistered()
	p.validationFailures.WithLabelValues(kind).Inc()
}

// RecordRulesetCacheLookup records a compiled-ruleset cache lookup.
func (p *PrometheusCollector) RecordRulesetCacheLookup(hit bool) {
	p.ensureRegistered()
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}

// RecordSearchNodes records nodes visited by one Solve call.
func (p *PrometheusCollector) RecordSearchNodes(nodes int64) {
	p.ensureRegistered()
	p.searchNodes.Observe(float64(nodes))
}

// RecordBacktracks records backtrack steps taken by one Solve call.
func (p *PrometheusCollector) RecordBacktracks(count int64) {
	p.ensureRegistered()
	p.backtracks.Observe(float64(count))
}

// RecordSolutionsSampled records how many distinct solutions were gathered.
func (p *PrometheusCollector) RecordSolutionsSampled(count int) {
	p.ensureRegistered()
	p.solutionsSampled.Observe(float64(count))
}
