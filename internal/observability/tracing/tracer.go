package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the recommendation engine.
var tracer = otel.Tracer("reco-engine")

// GetTracer returns the global tracer for creating spans.
// This tracer can be used throughout the engine to create new spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

// InitTracerProvider installs an SDK tracer provider as the global
// provider and returns a shutdown function. Without an exporter
// configured the spans are sampled but not shipped anywhere; deployments
// attach their own exporter before calling this.
func InitTracerProvider(opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("reco-engine")
	return tp.Shutdown
}
