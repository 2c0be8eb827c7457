package vecknn

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecknn-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogClassify logs a classification.
func (l *Logger) LogClassify(ctx context.Context, k, samples int, res *Result, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "classify failed",
			"k", k,
			"samples", samples,
			"error", err,
		)
	case !res.Found:
		l.WarnContext(ctx, "classify found no candidates",
			"k", k,
			"samples", samples,
			"scanned", res.Scanned,
		)
	default:
		l.DebugContext(ctx, "classify completed",
			"k", k,
			"samples", samples,
			"scanned", res.Scanned,
			"neighbors", len(res.Neighbors),
			"label", res.Label,
		)
	}
}

// LogLoad logs loading a labelled dataset.
func (l *Logger) LogLoad(ctx context.Context, source string, samples int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset loaded",
			"source", source,
			"samples", samples,
		)
	}
}
