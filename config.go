package santa

import "fmt"

// Default configuration values.
const (
	// DefaultMaxNodes bounds each solve at one million search nodes, far
	// beyond what a family-scale roster ever needs.
	DefaultMaxNodes = 1_000_000

	// DefaultSampleSize returns the first solution found.
	DefaultSampleSize = 1

	// MaxSampleSize caps how many distinct solutions a solve will gather
	// before choosing one.
	MaxSampleSize = 100
)

// Config controls solve behavior.
//
// The zero value is usable after SetDefaults; NewSolver applies defaults and
// validates automatically.
type Config struct {
	// Seed seeds the solve's random source. A fixed non-zero seed makes
	// repeated solves over the same plan reproducible. Zero draws a fresh
	// seed per solve, so equally valid solutions vary across runs.
	Seed uint64 `yaml:"seed"`

	// MaxNodes is the search node budget per Solve call. The backtracking
	// search is exhaustive, so the budget exists only to cap pathological
	// worst-case runtime; exceeding it yields ErrSearchLimit rather than a
	// false infeasibility claim.
	//
	// Default: 1,000,000.
	MaxNodes int64 `yaml:"maxNodes"`

	// HistoryWindow is how many most recent exclude-pairs years contribute
	// forbidden edges. Zero applies every supplied record. Looking back
	// indefinitely can make small rosters infeasible, which is why the
	// window is the caller's policy decision.
	HistoryWindow int `yaml:"historyWindow"`

	// SampleSize is how many distinct solutions to gather before choosing
	// one uniformly at random. Values above one trade search effort for
	// variety between equally valid solutions.
	//
	// Default: 1. Maximum: MaxSampleSize.
	SampleSize int `yaml:"sampleSize"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxNodes:   DefaultMaxNodes,
		SampleSize: DefaultSampleSize,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MaxNodes == 0 {
		cfg.MaxNodes = defaults.MaxNodes
	}
	if cfg.SampleSize == 0 {
		cfg.SampleSize = defaults.SampleSize
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxNodes <= 0 {
		return fmt.Errorf("MaxNodes must be > 0, got %d", cfg.MaxNodes)
	}
	if cfg.HistoryWindow < 0 {
		return fmt.Errorf("HistoryWindow must be >= 0, got %d", cfg.HistoryWindow)
	}
	if cfg.SampleSize <= 0 {
		return fmt.Errorf("SampleSize must be > 0, got %d", cfg.SampleSize)
	}
	if cfg.SampleSize > MaxSampleSize {
		return fmt.Errorf("SampleSize must be <= %d, got %d", MaxSampleSize, cfg.SampleSize)
	}

	return nil
}
