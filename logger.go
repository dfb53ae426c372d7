package tapkee

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with engine-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMethod adds the reduction method field to the logger.
func (l *Logger) WithMethod(m Method) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", m.String()),
	}
}

// WithSamples adds a sample-count field to the logger.
func (l *Logger) WithSamples(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("samples", n),
	}
}

// WithDimension adds a target-dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogEmbed logs an embedding run.
func (l *Logger) LogEmbed(ctx context.Context, m Method, samples, target int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "embed failed",
			"method", m.String(),
			"samples", samples,
			"target_dimension", target,
			"duration", duration,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "embed completed",
			"method", m.String(),
			"samples", samples,
			"target_dimension", target,
			"duration", duration,
		)
	}
}

// LogProject logs a projection replay.
func (l *Logger) LogProject(ctx context.Context, samples, target int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "project failed",
			"samples", samples,
			"target_dimension", target,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "project completed",
			"samples", samples,
			"target_dimension", target,
			"duration", duration,
		)
	}
}
