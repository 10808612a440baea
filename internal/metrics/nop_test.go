package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_RecordSolveDuration(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordSolveDuration(0.125, "solved")
		metrics.RecordSolveDuration(0, "")
		metrics.RecordSolveDuration(-1.0, "infeasible")
	})
}

func TestNopMetrics_RecordValidationFailure(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordValidationFailure("unknown_person")
		metrics.RecordValidationFailure("")
	})
}

func TestNopMetrics_RecordRulesetCacheLookup(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordRulesetCacheLookup(true)
		metrics.RecordRulesetCacheLookup(false)
	})
}

func TestNopMetrics_RecordSearchCounters(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordSearchNodes(1024)
		metrics.RecordSearchNodes(0)
		metrics.RecordBacktracks(37)
		metrics.RecordBacktracks(-1)
		metrics.RecordSolutionsSampled(100)
		metrics.RecordSolutionsSampled(0)
	})
}

func BenchmarkNopMetrics_RecordSolveDuration(b *testing.B) {
	metrics := NewNop()
	for b.Loop() {
		metrics.RecordSolveDuration(0.125, "solved")
	}
}

func BenchmarkNopMetrics_RecordSearchNodes(b *testing.B) {
	metrics := NewNop()
	for b.Loop() {
		metrics.RecordSearchNodes(1024)
	}
}
