package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// NewLogger creates a new structured logger with JSON output.
// The log level can be controlled via the LOG_LEVEL environment variable.
// Supported levels: debug, info, warn, error
// Default level: info
func NewLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
		// Add source code location for error and warn levels
		AddSource: logLevel <= slog.LevelWarn,
	})

	return slog.New(handler)
}

// NewTextLogger creates a new structured logger with human-readable text output.
// This is useful for local development and debugging.
func NewTextLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelWarn,
	})

	return slog.New(handler)
}

// WithNewComputationID stores a fresh computation ID in the context.
// One recommendation computation carries one ID across every pipeline
// stage, so its log entries can be correlated.
func WithNewComputationID(ctx context.Context) context.Context {
	return context.WithValue(ctx, computationIDKey, uuid.NewString())
}

// ComputationID returns the computation ID from the context, or "" if
// none was set.
func ComputationID(ctx context.Context) string {
	if id, ok := ctx.Value(computationIDKey).(string); ok {
		return id
	}
	return ""
}

// WithComputationID returns a new logger that includes the computation ID
// from the context. This enables tracing one computation across log entries.
func WithComputationID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := ComputationID(ctx)
	if id == "" {
		return logger
	}
	return logger.With("computation_id", id)
}

// FromContext retrieves the logger from the context, or returns the
// default logger if none was stored. Pipeline stages pull their logger
// from the context so per-computation attributes travel with it.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const (
	loggerContextKey contextKey = "logger"
	computationIDKey contextKey = "computation_id"
)
