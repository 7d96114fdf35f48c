package artgo

import (
	"log/slog"
)

// Defaults reproduce the customer purchase demo.
const (
	DefaultVigilance = 0.6
	DefaultBeta      = 1.0
	DefaultCapacity  = 10
	DefaultMaxPasses = 50
)

type options struct {
	vigilance        float64
	beta             float64
	capacity         int
	maxPasses        int
	checkInvariants  bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Engine.
type Option func(*options)

// WithVigilance sets the vigilance threshold ρ. It must lie in [0, 1).
//
// A candidate cluster is accepted when |item ∧ prototype| / |item| is
// strictly below ρ. Raising ρ therefore makes reassignment easier, which is
// the opposite of textbook ART1.
func WithVigilance(rho float64) Option {
	return func(o *options) {
		o.vigilance = rho
	}
}

// WithBeta sets the small positive constant β used by the resonance test.
func WithBeta(beta float64) Option {
	return func(o *options) {
		o.beta = beta
	}
}

// WithCapacity sets C_max, the number of prototype slots.
// Assign fails with *ErrCapacityExceeded when an item needs a new cluster
// and all slots are active.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithMaxPasses sets the pass budget K. Assign runs at most K passes and
// reports Converged == false if none of them was a zero-change pass.
func WithMaxPasses(k int) Option {
	return func(o *options) {
		o.maxPasses = k
	}
}

// WithInvariantChecks verifies every prototype and member count after each
// membership change. Intended for tests and debugging; it makes each change
// cost O(N·F).
func WithInvariantChecks(enabled bool) Option {
	return func(o *options) {
		o.checkInvariants = enabled
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &artgo.BasicMetricsCollector{}
//	eng, _ := artgo.New(11, 14, artgo.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Assigns: %d, Passes: %d\n", stats.AssignCount, stats.PassCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := artgo.NewJSONLogger(slog.LevelDebug)
//	eng, _ := artgo.New(11, 14, artgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		vigilance:        DefaultVigilance,
		beta:             DefaultBeta,
		capacity:         DefaultCapacity,
		maxPasses:        DefaultMaxPasses,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
