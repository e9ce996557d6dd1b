// Package telemetry provides optional OpenTelemetry tracing of runs.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vovakirdan/tui-grandmaster/internal/core"
)

const (
	serviceName    = "tgm"
	serviceVersion = "0.1.0"
)

// EndpointEnv enables the exporter when set.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(EndpointEnv) != ""
}

// Setup initializes OpenTelemetry with the OTLP HTTP exporter.
// It reads configuration from the standard OTEL_* environment variables
// and does nothing when no endpoint is set.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

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

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("tgm/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("tgm/noop")
}

// RunTracer returns the run tracer when telemetry is configured, otherwise
// a no-op tracer.
func RunTracer() trace.Tracer {
	if Enabled() {
		return Tracer("run")
	}
	return NoopTracer()
}

// StartRun opens a span covering one run.
func StartRun(ctx context.Context, tr trace.Tracer, modeID, player string) (context.Context, trace.Span) {
	return tr.Start(ctx, "run",
		trace.WithAttributes(
			attribute.String("run.mode", modeID),
			attribute.String("run.player", player),
		),
	)
}

// EndRun records the run outcome on span and ends it.
func EndRun(span trace.Span, sum core.RunSummary) {
	span.SetAttributes(
		attribute.Int("run.start_level", sum.StartLevel),
		attribute.Int("run.level", sum.Level),
		attribute.Int("run.ticks", sum.Ticks),
		attribute.Bool("run.completed", sum.Completed),
	)
	span.SetStatus(codes.Ok, "")
	span.End()
}

// AbortRun ends span for a run left before game over.
func AbortRun(span trace.Span, reason string) {
	span.SetStatus(codes.Error, reason)
	span.End()
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
