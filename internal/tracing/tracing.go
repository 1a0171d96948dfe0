// Package tracing installs the OpenTelemetry tracer provider used by the
// relay. Finished spans are written to the zerolog stream, so a lookup can be
// followed in the same log as its access entry.
package tracing

import (
	"context"

	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewTracerProvider returns a provider that exports every span synchronously
// to log. The caller registers it with otel.SetTracerProvider and calls
// Shutdown on exit.
func NewTracerProvider(log *logger.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(NewLogExporter(log)),
	)
}

// LogExporter is a [sdktrace.SpanExporter] that writes one log entry per span.
type LogExporter struct {
	logger *logger.Logger
}

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

// NewLogExporter returns a LogExporter writing to log, or discarding output
// when log is nil.
func NewLogExporter(log *logger.Logger) *LogExporter {
	if log == nil {
		log = logger.Nop()
	}
	return &LogExporter{logger: log}
}

// ExportSpans logs spans at debug level, or warn level when the span ended
// with an error status.
func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		event := e.logger.Debug()
		if span.Status().Code == codes.Error {
			event = e.logger.Warn().Str("span_error", span.Status().Description)
		}

		for _, kv := range span.Attributes() {
			event = event.Str(string(kv.Key), kv.Value.Emit())
		}

		event.
			Str("span", span.Name()).
			Str("span_kind", span.SpanKind().String()).
			Str("otel_trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Str("span_status", span.Status().Code.String()).
			Dur("span_duration", span.EndTime().Sub(span.StartTime())).
			Msg("span finished")
	}

	return ctx.Err()
}

// Shutdown implements [sdktrace.SpanExporter]; there is nothing to flush.
func (e *LogExporter) Shutdown(ctx context.Context) error {
	return ctx.Err()
}
