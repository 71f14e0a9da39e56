package infrastructure

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendancecli/internal/config"
)

func TestNewTracer_None(t *testing.T) {
	tracer, shutdown, err := NewTracer(config.TelemetryConfig{TraceExporter: "none"}, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracer_Stdout(t *testing.T) {
	var out bytes.Buffer

	tracer, shutdown, err := NewTracer(config.TelemetryConfig{TraceExporter: "stdout"}, &out, DiscardLogger())
	require.NoError(t, err)

	_, span := tracer.Start(context.Background(), "extract")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, out.String(), `"Name": "extract"`)
	assert.Contains(t, out.String(), ServiceName)
}

func TestNewTracer_Unsupported(t *testing.T) {
	_, _, err := NewTracer(config.TelemetryConfig{TraceExporter: "otlp"}, nil, nil)
	assert.Error(t, err)
}
