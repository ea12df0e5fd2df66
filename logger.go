package sdmgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sdmgo-specific context.
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

// LogWrite logs a write operation.
func (l *Logger) LogWrite(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "write completed")
	}
}

// LogRead logs a read operation.
func (l *Logger) LogRead(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed")
	}
}

// LogErase logs an erase operation.
func (l *Logger) LogErase(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "erase failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "erase completed")
	}
}

// LogBatchWrite logs a batch write operation.
func (l *Logger) LogBatchWrite(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch write failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch write completed",
			"count", count,
		)
	}
}

// LogBatchRead logs a batch read operation.
func (l *Logger) LogBatchRead(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch read failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch read completed",
			"count", count,
		)
	}
}
