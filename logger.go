package bookcode

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with codec-specific context.
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

// WithBook adds a book identifier field to the logger.
func (l *Logger) WithBook(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("book", name),
	}
}

// LogIndexBuild logs an index build.
func (l *Logger) LogIndexBuild(ctx context.Context, mode string, keys, locations int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"mode", mode,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index build completed",
			"mode", mode,
			"keys", keys,
			"locations", locations,
		)
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(ctx context.Context, tokens, missing int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "encode failed",
			"tokens", tokens,
			"error", err,
		)
	case missing > 0:
		l.WarnContext(ctx, "encode completed with missing words",
			"tokens", tokens,
			"missing", missing,
		)
	default:
		l.DebugContext(ctx, "encode completed",
			"tokens", tokens,
		)
	}
}

// LogDecode logs a decode operation.
func (l *Logger) LogDecode(ctx context.Context, tokens, unresolved int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "decode failed",
			"tokens", tokens,
			"error", err,
		)
	case unresolved > 0:
		l.WarnContext(ctx, "decode completed with unresolved tokens",
			"tokens", tokens,
			"unresolved", unresolved,
		)
	default:
		l.DebugContext(ctx, "decode completed",
			"tokens", tokens,
		)
	}
}

// LogSnapshot logs a snapshot save or restore.
func (l *Logger) LogSnapshot(ctx context.Context, op string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"op", op,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot completed",
			"op", op,
		)
	}
}
