// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the engine.
//
// Key features:
//   - JSON and text output formats
//   - Computation ID propagation across pipeline stages
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "reco-engine/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("engine started", slog.String("version", "1.0"))
//	}
//
//	func compute(ctx context.Context) {
//	    ctx = logging.WithNewComputationID(ctx)
//	    logger := logging.WithComputationID(ctx, slog.Default())
//	    logger.Info("computing recommendations")
//	}
package logging
