package santa

// Option configures a Solver with optional dependencies.
type Option func(*solverOptions)

// solverOptions holds optional Solver configuration.
type solverOptions struct {
	strategy    SearchStrategy
	strategySet bool
	hooks       *Hooks
	metrics     MetricsCollector
	logger      Logger
}

// WithStrategy sets a custom search strategy.
//
// Parameters:
//   - strategy: SearchStrategy implementation
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	solver, err := santa.NewSolver(&cfg, santa.WithStrategy(strategy.NewMostConstrained()))
func WithStrategy(strategy SearchStrategy) Option {
	return func(o *solverOptions) {
		o.strategy = strategy
		o.strategySet = true
	}
}

// WithHooks sets solve lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	hooks := &santa.Hooks{
//	    OnValidated: func(ctx context.Context, stats santa.PlanStats) error {
//	        log.Printf("validated plan of %d people", stats.People)
//	        return nil
//	    },
//	}
//	solver, err := santa.NewSolver(&cfg, santa.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *solverOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSolver
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *solverOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog-style loggers)
//
// Returns:
//   - Option: Functional option for NewSolver
func WithLogger(logger Logger) Option {
	return func(o *solverOptions) {
		o.logger = logger
	}
}
