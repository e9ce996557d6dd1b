package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
)

func TestSetupDisabled(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	shutdown, err := Setup(context.Background())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.False(t, Enabled(), "no endpoint configured")
}

func TestRunSpan(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	defer tp.Shutdown(context.Background())

	_, span := StartRun(context.Background(), tp.Tracer("test"), "master", "alice")
	EndRun(span, core.RunSummary{StartLevel: 100, Level: 412, Ticks: 5000})

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	got := spans[0]
	assert.Equal(t, "run", got.Name)
	assert.Equal(t, codes.Ok, got.Status.Code)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range got.Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "master", attrs["run.mode"].AsString())
	assert.Equal(t, int64(412), attrs["run.level"].AsInt64())
	assert.False(t, attrs["run.completed"].AsBool())
}

func TestAbortRun(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	defer tp.Shutdown(context.Background())

	_, span := StartRun(context.Background(), tp.Tracer("test"), "classic", "")
	AbortRun(span, "quit")

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "quit", spans[0].Status.Description)
}

func TestNoopTracer(t *testing.T) {
	_, span := StartRun(context.Background(), NoopTracer(), "classic", "")
	EndRun(span, core.RunSummary{Level: 5})
	assert.False(t, span.SpanContext().IsValid())
}
