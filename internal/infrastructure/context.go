package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// RunContext carries the per-run collaborators every pipeline component
// needs. It replaces process-wide logging state: components receive the
// logger, tracer and metrics explicitly.
type RunContext struct {
	ID      string
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *RunMetrics
}

// NewRunContext creates a run context with a fresh run ID.
// Nil collaborators are replaced with silent defaults so tests can pass
// only what they assert on.
func NewRunContext(logger *slog.Logger, tracer trace.Tracer, metrics *RunMetrics) *RunContext {
	if logger == nil {
		logger = DiscardLogger()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(TracerName)
	}
	if metrics == nil {
		metrics = NewRunMetrics()
	}

	return &RunContext{
		ID:      GenerateRunID(),
		Logger:  logger,
		Tracer:  tracer,
		Metrics: metrics,
	}
}

// GenerateRunID creates a new unique run ID using UUID v4
func GenerateRunID() string {
	return uuid.New().String()
}

// Context returns ctx tagged with the run ID; loggers built by NewLogger
// add it to every record logged with that context.
func (rc *RunContext) Context(ctx context.Context) context.Context {
	return WithRunID(ctx, rc.ID)
}

// Component returns the run logger tagged with a component name
func (rc *RunContext) Component(name string) *slog.Logger {
	return WithComponent(rc.Logger, name)
}
