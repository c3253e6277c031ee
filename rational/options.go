package rational

import "log/slog"

// Default configuration values.
const (
	DefaultTolerance      = 1e-13
	DefaultCleanTolerance = 1e-10
	DefaultResidueRadius  = 1e-3
	DefaultResidueSamples = 64
)

// Config holds the parameters of an [Approximation].
type Config struct {
	// Tolerance stops greedy growth once max residual / max|F| falls below it.
	Tolerance float64
	// CleanTolerance marks a pole as spurious when |contour integral| / max|F|
	// falls below it.
	CleanTolerance float64
	// MaxSteps caps the number of greedy growth steps. Zero keeps the
	// default cap of floor(M/2)-1.
	MaxSteps int
	// Cleanup enables the Froissart doublet removal loop in Calculate.
	Cleanup bool
	// ResidueRadius is the largest contour radius used by Residues.
	ResidueRadius float64
	// ResidueSamples is the number of contour points used by Residues.
	ResidueSamples int
	Logger         *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:      DefaultTolerance,
		CleanTolerance: DefaultCleanTolerance,
		Cleanup:        true,
		ResidueRadius:  DefaultResidueRadius,
		ResidueSamples: DefaultResidueSamples,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// WithTolerance sets the greedy fit tolerance.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.Tolerance = tol
		}
	}
}

// WithCleanTolerance sets the Froissart doublet tolerance.
func WithCleanTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.CleanTolerance = tol
		}
	}
}

// WithMaxSteps caps the number of greedy growth steps below the default
// floor(M/2)-1.
func WithMaxSteps(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxSteps = n
		}
	}
}

// WithoutCleanup disables the doublet removal loop in Calculate. Cleanup can
// still be run explicitly.
func WithoutCleanup() Option {
	return func(cfg *Config) {
		cfg.Cleanup = false
	}
}

// WithResidueRadius sets the largest contour radius used by Residues.
func WithResidueRadius(r float64) Option {
	return func(cfg *Config) {
		if r > 0 {
			cfg.ResidueRadius = r
		}
	}
}

// WithResidueSamples sets the number of contour points used by Residues.
// n must be a power of two of at least 8.
func WithResidueSamples(n int) Option {
	return func(cfg *Config) {
		if n >= 8 && n&(n-1) == 0 {
			cfg.ResidueSamples = n
		}
	}
}

// WithLogger sets the logger for fit progress. Records are emitted at debug
// level.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
