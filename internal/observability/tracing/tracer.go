package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ServiceName identifies spans emitted by this service.
const ServiceName = "article-api"

// Tracer returns the service tracer from the global provider.
// It is looked up on every call so a provider installed later takes effect.
func Tracer() trace.Tracer {
	return otel.Tracer(ServiceName)
}

// Init installs an SDK tracer provider and the W3C trace-context propagator.
// Spans are sampled and carry trace IDs into logs and the X-Trace-Id header.
// Spans leave the process only through processors supplied by the caller;
// cmd/api passes none, so nothing is exported there.
// When disabled, the global no-op provider is left in place and only the propagator is set.
func Init(enabled bool, version string, processors ...sdktrace.SpanProcessor) func(context.Context) error {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	if !enabled {
		return func(context.Context) error { return nil }
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ServiceName),
			attribute.String("service.version", version),
		)),
	}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
