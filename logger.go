package simgraph

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with simgraph-specific context.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// WithVertices adds a vertex-count field to the logger.
func (l *Logger) WithVertices(n int) *Logger {
	return &Logger{Logger: l.Logger.With("vertices", n)}
}

// LogBuild logs a graph construction run.
func (l *Logger) LogBuild(ctx context.Context, vertices int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "graph build failed",
			"vertices", vertices,
			"duration", duration,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "graph build completed",
			"vertices", vertices,
			"duration", duration,
		)
	}
}

// LogLocalScale logs a local-scale estimation run.
func (l *Logger) LogLocalScale(ctx context.Context, k, vertices int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "local scale estimation failed",
			"k", k,
			"vertices", vertices,
			"duration", duration,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "local scale estimation completed",
			"k", k,
			"vertices", vertices,
			"duration", duration,
		)
	}
}

// LogRandomKGraph logs a random k-graph generation run.
func (l *Logger) LogRandomKGraph(ctx context.Context, vertices, k int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "random k-graph generation failed",
			"vertices", vertices,
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "random k-graph generated",
			"vertices", vertices,
			"k", k,
		)
	}
}
