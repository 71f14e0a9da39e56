package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"attendancecli/internal/config"
)

const (
	ServiceName = "attendance-report-generator"
	TracerName  = "attendancecli"
)

// TracerShutdown flushes and stops a tracer provider
type TracerShutdown func(context.Context) error

// NewTracer returns the tracer described by cfg.TraceExporter.
// "stdout" exports spans as pretty JSON to w (os.Stdout when nil) through a
// synchronous processor, so a short batch run never loses spans; "none"
// returns a no-op tracer.
func NewTracer(cfg config.TelemetryConfig, w io.Writer, logger *slog.Logger) (trace.Tracer, TracerShutdown, error) {
	noopShutdown := func(context.Context) error { return nil }

	switch cfg.TraceExporter {
	case "", "none":
		return noop.NewTracerProvider().Tracer(TracerName), noopShutdown, nil
	case "stdout":
	default:
		return nil, nil, fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	if w == nil {
		w = os.Stdout
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", config.AppVersion),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)

	if logger != nil {
		logger.Info("tracing initialized", slog.String("exporter", cfg.TraceExporter))
	}

	return tp.Tracer(TracerName, trace.WithInstrumentationVersion(config.AppVersion)), tp.Shutdown, nil
}
