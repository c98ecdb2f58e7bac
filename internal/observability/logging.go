// Package observability carries per-build logging context and configures the
// process-wide slog handler.
package observability

import (
	"context"
	"io"
	"log/slog"
)

// Build triggers recorded in the log context.
const (
	TriggerCLI     = "cli"
	TriggerStartup = "startup"
	TriggerChange  = "change"
)

// LogContext holds structured logging context information.
type LogContext struct {
	Trigger    string
	Sequence   int
	ConfigPath string
}

type logContextKeyType string

const logContextKey logContextKeyType = "log-context"

// WithTrigger records what started the current build.
func WithTrigger(ctx context.Context, trigger string) context.Context {
	lc := extractLogContext(ctx)
	lc.Trigger = trigger
	return context.WithValue(ctx, logContextKey, lc)
}

// WithSequence records the ordinal of the current build within a watch session.
func WithSequence(ctx context.Context, seq int) context.Context {
	lc := extractLogContext(ctx)
	lc.Sequence = seq
	return context.WithValue(ctx, logContextKey, lc)
}

// WithConfigPath records the configuration file being built.
func WithConfigPath(ctx context.Context, path string) context.Context {
	lc := extractLogContext(ctx)
	lc.ConfigPath = path
	return context.WithValue(ctx, logContextKey, lc)
}

func extractLogContext(ctx context.Context) LogContext {
	if ctx == nil {
		return LogContext{}
	}
	if lc, ok := ctx.Value(logContextKey).(LogContext); ok {
		return lc
	}
	return LogContext{}
}

func getLogAttrs(ctx context.Context) []slog.Attr {
	lc := extractLogContext(ctx)
	attrs := []slog.Attr{}
	if lc.Trigger != "" {
		attrs = append(attrs, slog.String("trigger", lc.Trigger))
	}
	if lc.Sequence > 0 {
		attrs = append(attrs, slog.Int("sequence", lc.Sequence))
	}
	if lc.ConfigPath != "" {
		attrs = append(attrs, slog.String("config", lc.ConfigPath))
	}
	return attrs
}

// InfoContext logs an info message with context information.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.LevelInfo, msg, attrs)
}

// WarnContext logs a warning message with context information.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.LevelWarn, msg, attrs)
}

// ErrorContext logs an error message with context information.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.LevelError, msg, attrs)
}

// DebugContext logs a debug message with context information.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.LevelDebug, msg, attrs)
}

func logAttrs(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	all := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, level, msg, all...)
}

// GetContext returns the structured log context from the provided context.
func GetContext(ctx context.Context) LogContext {
	return extractLogContext(ctx)
}

// Setup installs a text or JSON handler writing to w as the default logger.
func Setup(w io.Writer, json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
