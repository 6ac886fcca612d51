// Package tracing provides OpenTelemetry tracing integration.
//
// The engine creates spans around the recommendation pipeline stages:
// the request-level span, the cold-path computation span, and one span
// per content type. Deployments that want the spans exported attach an
// exporter via InitTracerProvider options.
//
// Example usage:
//
//	func main() {
//	    shutdown := tracing.InitTracerProvider()
//	    defer shutdown(context.Background())
//	}
//
//	func compute(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "reco.compute")
//	    defer span.End()
//	    // ... run the pipeline ...
//	}
package tracing
