package continuation

import "log/slog"

// Default configuration values.
const (
	DefaultMinStep       = 1e-6
	DefaultPerturbation  = 1e-4
	DefaultMaxIterations = 10
)

// Config holds the parameters of a [Follower].
type Config struct {
	// MinStep is the parameter step below which a walk is abandoned.
	MinStep float64
	// Perturbation is the ε in the second secant seed z(1+ε)±ε.
	Perturbation float64
	// MaxIterations bounds each secant solve.
	MaxIterations int
	Logger        *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MinStep:       DefaultMinStep,
		Perturbation:  DefaultPerturbation,
		MaxIterations: DefaultMaxIterations,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithMinStep sets the smallest parameter step tried before giving up.
func WithMinStep(step float64) Option {
	return func(cfg *Config) {
		if step > 0 {
			cfg.MinStep = step
		}
	}
}

// WithPerturbation sets the relative offset of the second secant seed.
func WithPerturbation(eps float64) Option {
	return func(cfg *Config) {
		if eps > 0 {
			cfg.Perturbation = eps
		}
	}
}

// WithMaxIterations bounds the secant iterations per attempted step.
func WithMaxIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxIterations = n
		}
	}
}

// WithLogger sets the logger for continuation progress. Records are emitted
// at debug level.
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
