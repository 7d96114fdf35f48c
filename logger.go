package artgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with artgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// WithFeatures adds a features field to the logger.
func (l *Logger) WithFeatures(features int) *Logger {
	return &Logger{
		Logger: l.Logger.With("features", features),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogPass logs a completed pass.
func (l *Logger) LogPass(pass, reassigned, allocated int) {
	l.Debug("pass completed",
		"pass", pass,
		"reassigned", reassigned,
		"allocated", allocated,
	)
}

// LogAssign logs the outcome of an assignment run.
func (l *Logger) LogAssign(items int, res *Result, err error) {
	switch {
	case err != nil:
		l.Error("assign failed",
			"items", items,
			"error", err,
		)
	case !res.Converged:
		l.Warn("assign stopped before convergence",
			"items", items,
			"passes", res.Passes,
			"clusters", res.NumClusters(),
		)
	default:
		l.Info("assign converged",
			"items", items,
			"passes", res.Passes,
			"clusters", res.NumClusters(),
		)
	}
}
