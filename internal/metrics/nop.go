// Package metrics provides MetricsCollector implementations for the
// secret-santa library.
package metrics

import "github.com/shanecelis/secret-santa/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// This is the default implementation used when no custom collector is
// provided, eliminating the need for nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSolveDuration discards the measurement.
func (n *NopMetrics) RecordSolveDuration(_ float64, _ string) {}

// RecordValidationFailure discards the measurement.
func (n *NopMetrics) RecordValidationFailure(_ string) {}

// RecordRulesetCacheLookup discards the measurement.
func (n *NopMetrics) RecordRulesetCacheLookup(_ bool) {}

// RecordSearchNodes discards the measurement.
func (n *NopMetrics) RecordSearchNodes(_ int64) {}

// RecordBacktracks discards the measurement.
func (n *NopMetrics) RecordBacktracks(_ int64) {}

// RecordSolutionsSampled discards the measurement.
func (n *NopMetrics) RecordSolutionsSampled(_ int) {}
