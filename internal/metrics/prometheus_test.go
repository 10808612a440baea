package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_LazyRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "")

	// Nothing is registered until the first record call.
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)

	collector.RecordSolveDuration(0.01, "solved")
	collector.RecordValidationFailure("unknown_person")
	collector.RecordRulesetCacheLookup(true)
	collector.RecordRulesetCacheLookup(false)
	collector.RecordSearchNodes(512)
	collector.RecordBacktracks(3)
	collector.RecordSolutionsSampled(5)

	families, err = reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.ElementsMatch(t, []string{
		"santa_solver_solve_duration_seconds",
		"santa_solver_validation_failures_total",
		"santa_solver_ruleset_cache_lookups_total",
		"santa_search_nodes",
		"santa_search_backtracks",
		"santa_search_solutions_sampled",
	}, names)
}

func TestPrometheusCollector_RepeatedRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "custom")

	// Registration happens once; repeated records must not re-register.
	require.NotPanics(t, func() {
		for range 3 {
			collector.RecordSolveDuration(0.01, "solved")
			collector.RecordSearchNodes(16)
		}
	})
}
