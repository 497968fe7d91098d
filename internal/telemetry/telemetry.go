// Package telemetry exports traces of world construction and player actions
// over OTLP/HTTP.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "straightahead"
	serviceVersion = "0.1.0"

	envHeaders = "OTEL_EXPORTER_OTLP_HEADERS"
)

// ErrNoCredentials is returned by Setup when no OTLP headers are configured.
// Spans then go to the global no-op provider.
var ErrNoCredentials = errors.New("telemetry: " + envHeaders + " not set")

// Configured reports whether export credentials are present. getenv is
// typically os.Getenv.
func Configured(getenv func(string) string) bool {
	return getenv(envHeaders) != ""
}

// Setup installs a global tracer provider that batches spans to the endpoint
// in OTEL_EXPORTER_OTLP_ENDPOINT, authenticated by OTEL_EXPORTER_OTLP_HEADERS.
//
// Returns a shutdown function that flushes pending spans; call it on exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	if !Configured(os.Getenv) {
		return nil, ErrNoCredentials
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Own resource rather than merging with Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the tracer for one component, such as "world" or "session".
// It follows whatever provider is installed globally.
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
