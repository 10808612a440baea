package santa

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/shanecelis/secret-santa/internal/fingerprint"
	"github.com/shanecelis/secret-santa/internal/hooks"
	"github.com/shanecelis/secret-santa/internal/logger"
	"github.com/shanecelis/secret-santa/internal/metrics"
	"github.com/shanecelis/secret-santa/internal/rules"
	"github.com/shanecelis/secret-santa/internal/search"
	"github.com/shanecelis/secret-santa/strategy"
	"github.com/shanecelis/secret-santa/types"
)

// duplicateDrawLimit bounds how many consecutive duplicate solutions the
// sampler tolerates before concluding the distinct-solution space is smaller
// than the requested sample size.
const duplicateDrawLimit = 8

// Solver finds assignments satisfying a plan's constraints.
//
// A Solver is immutable after construction and safe for concurrent use;
// each Solve call keeps its search state local. Compiled rulesets are cached
// per plan fingerprint, so re-solving the same plan (for example with a
// larger sample size) skips validation work without changing its verdict.
type Solver struct {
	cfg      Config
	strategy SearchStrategy
	hooks    Hooks
	metrics  MetricsCollector
	logger   Logger

	rulesets *xsync.Map[uint64, *rules.Ruleset]
}

// NewSolver creates a Solver from the configuration and options.
//
// Missing configuration values are filled with defaults before validation.
// When no strategy is supplied the random-order strategy is used; logging
// and metrics default to no-ops.
//
// Parameters:
//   - cfg: Solve configuration (defaults applied in place)
//   - opts: Functional options (WithStrategy, WithLogger, WithMetrics, WithHooks)
//
// Returns:
//   - *Solver: Ready-to-use solver
//   - error: ErrInvalidConfig or ErrStrategyRequired
func NewSolver(cfg *Config, opts ...Option) (*Solver, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	options := &solverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks
	// everywhere.
	searchStrategy := options.strategy
	if searchStrategy == nil {
		if options.strategySet {
			return nil, ErrStrategyRequired
		}
		searchStrategy = strategy.NewRandom()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	return &Solver{
		cfg:      *cfg,
		strategy: searchStrategy,
		hooks:    hooks.Fill(options.hooks),
		metrics:  metricsCollector,
		logger:   loggerInstance,
		rulesets: xsync.NewMap[uint64, *rules.Ruleset](),
	}, nil
}

// Solve searches for an assignment satisfying every constraint in the plan.
//
// The plan is validated first; configuration errors are reported before any
// search effort is spent. The search then fixes whitelist edges, orders the
// remaining givers with the configured strategy, and backtracks through
// receiver candidates until an assignment is found, the space is exhausted,
// or the node budget runs out. With Config.SampleSize > 1, up to that many
// distinct solutions are gathered and one is chosen uniformly.
//
// Parameters:
//   - ctx: Context checked periodically during search
//   - plan: Fully-resolved roster and constraints (treated as immutable)
//
// Returns:
//   - *Solution: Complete assignment, nil on failure
//   - error: nil, ErrPlanRequired, ErrInvalidPlan, ErrInfeasible,
//     ErrSearchLimit, or the context's error
func (s *Solver) Solve(ctx context.Context, plan *types.Plan) (*types.Solution, error) {
	start := time.Now()

	if plan == nil {
		return nil, ErrPlanRequired
	}

	runID := uuid.NewString()
	fp := fingerprint.Plan(plan, s.cfg.HistoryWindow)

	rs, err := s.ruleset(plan, fp, runID)
	if err != nil {
		return nil, s.fail(ctx, start, err)
	}

	if err := rs.CheckFeasible(); err != nil {
		return nil, s.fail(ctx, start, err)
	}

	stats := rs.Stats()
	s.callHook(ctx, "OnValidated", func() error { return s.hooks.OnValidated(ctx, stats) })
	s.logger.Debug("plan validated",
		"run_id", runID,
		"people", stats.People,
		"forced_edges", stats.ForcedEdges,
		"forbidden_edges", stats.ForbiddenEdges,
		"active_history_years", stats.ActiveHistoryYears,
	)

	seed := s.cfg.Seed
	if seed == 0 {
		seed = randomSeed()
	}
	rng := rand.New(rand.NewPCG(seed, fp))

	solutions, searchStats, err := s.sample(ctx, rs, rng)
	s.metrics.RecordSearchNodes(searchStats.Nodes)
	s.metrics.RecordBacktracks(searchStats.Backtracks)
	if err != nil {
		return nil, s.fail(ctx, start, err)
	}

	chosen := solutions[rng.IntN(len(solutions))]
	s.metrics.RecordSolutionsSampled(len(solutions))
	s.metrics.RecordSolveDuration(time.Since(start).Seconds(), types.OutcomeSolved)
	s.logger.Info("solve complete",
		"run_id", runID,
		"strategy", s.strategy.Name(),
		"seed", seed,
		"nodes", searchStats.Nodes,
		"backtracks", searchStats.Backtracks,
		"solutions_sampled", len(solutions),
	)

	return chosen, nil
}

// ruleset returns the compiled constraint model for the plan, consulting the
// fingerprint-keyed cache first. Compilation is pure, so cached verdicts are
// identical to recompiled ones.
func (s *Solver) ruleset(plan *types.Plan, fp uint64, runID string) (*rules.Ruleset, error) {
	if cached, ok := s.rulesets.Load(fp); ok {
		s.metrics.RecordRulesetCacheLookup(true)
		return cached, nil
	}
	s.metrics.RecordRulesetCacheLookup(false)

	rs, err := rules.Compile(plan, s.cfg.HistoryWindow)
	if err != nil {
		var vErr *types.ValidationError
		if errors.As(err, &vErr) {
			s.metrics.RecordValidationFailure(vErr.Kind)
			s.logger.Warn("plan rejected", "run_id", runID, "kind", vErr.Kind, "detail", vErr.Detail)
		}

		return nil, err
	}
	s.rulesets.Store(fp, rs)

	return rs, nil
}

// sample gathers up to Config.SampleSize distinct solutions under a shared
// node budget and returns them all; the caller chooses one.
func (s *Solver) sample(ctx context.Context, rs *rules.Ruleset, rng *rand.Rand) ([]*types.Solution, search.Stats, error) {
	free := make([]int, 0, rs.Len())
	degrees := make([]int, 0, rs.Len())
	for g := range rs.Len() {
		if rs.Forced(g) == -1 {
			free = append(free, g)
			degrees = append(degrees, rs.ReceiverDegree(g))
		}
	}

	var (
		total     search.Stats
		solutions []*types.Solution
		seen      = make(map[uint64]struct{})
		dupDraws  = 0
	)

	for len(solutions) < s.cfg.SampleSize {
		perm := s.strategy.OrderGivers(degrees, rng)
		order := make([]int, len(perm))
		for i, p := range perm {
			order[i] = free[p]
		}

		assign, stats, err := search.Run(ctx, rs, order, rng, s.cfg.MaxNodes-total.Nodes)
		total.Nodes += stats.Nodes
		total.Backtracks += stats.Backtracks

		switch {
		case err == nil:
		case errors.Is(err, search.ErrNoSolution):
			if len(solutions) > 0 {
				// Cannot happen for independent runs of a complete
				// search, but tolerate it rather than discard samples.
				return solutions, total, nil
			}

			return nil, total, &types.InfeasibleError{
				Detail: "search exhausted all assignments without finding one that satisfies every constraint",
			}
		case errors.Is(err, search.ErrBudgetExceeded):
			if len(solutions) > 0 {
				s.logger.Warn("node budget spent during sampling, choosing among solutions found",
					"found", len(solutions), "requested", s.cfg.SampleSize)
				return solutions, total, nil
			}

			return nil, total, &types.SearchLimitError{Nodes: s.cfg.MaxNodes}
		default:
			return nil, total, err
		}

		h := fingerprint.Assignment(assign)
		if _, dup := seen[h]; dup {
			dupDraws++
			if dupDraws >= duplicateDrawLimit {
				// The distinct-solution space is smaller than requested.
				return solutions, total, nil
			}
			continue
		}
		seen[h] = struct{}{}
		dupDraws = 0

		solution := solutionFrom(rs, assign)
		solutions = append(solutions, solution)
		s.callHook(ctx, "OnSolutionSampled", func() error { return s.hooks.OnSolutionSampled(ctx, solution) })
	}

	return solutions, total, nil
}

// fail records the failure outcome, reports it to the OnError hook, and
// passes the error through.
func (s *Solver) fail(ctx context.Context, start time.Time, err error) error {
	outcome := types.OutcomeCanceled
	switch {
	case errors.Is(err, ErrInvalidPlan):
		outcome = types.OutcomeInvalidPlan
	case errors.Is(err, ErrInfeasible):
		outcome = types.OutcomeInfeasible
	case errors.Is(err, ErrSearchLimit):
		outcome = types.OutcomeSearchLimit
	}
	s.metrics.RecordSolveDuration(time.Since(start).Seconds(), outcome)
	s.callHook(ctx, "OnError", func() error { return s.hooks.OnError(ctx, err) })

	return err
}

// callHook invokes a hook and logs (rather than propagates) its error.
func (s *Solver) callHook(_ context.Context, name string, fn func() error) {
	if err := fn(); err != nil {
		s.logger.Warn("hook returned error", "hook", name, "error", err)
	}
}

// solutionFrom converts an index-based assignment into a Solution.
func solutionFrom(rs *rules.Ruleset, assign []int) *types.Solution {
	pairs := make([]types.Pair, 0, len(assign))
	for g, r := range assign {
		pairs = append(pairs, types.Pair{Giver: rs.Name(g), Receiver: rs.Name(r)})
	}

	return types.NewSolution(pairs)
}

// randomSeed draws a fresh seed from the system entropy source.
func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint64(b[:])
}
