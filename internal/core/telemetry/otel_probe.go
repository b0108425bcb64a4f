package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cadastro/internal/core/domain"
	"cadastro/internal/core/port"
)

const tracerName = "cadastro"

// OTELProbe implements port.Telemetry with OpenTelemetry spans, slog records
// and, when metrics is set, Prometheus counters.
type OTELProbe struct {
	logger  *slog.Logger
	metrics *AppMetrics
}

func NewOTELProbe(logger *slog.Logger, metrics *AppMetrics) port.Telemetry {
	if logger == nil {
		logger = slog.Default()
	}

	return &OTELProbe{
		logger:  logger,
		metrics: metrics,
	}
}

// OTelSpan adapts trace.Span to port.Span.
type OTelSpan struct {
	span trace.Span
}

func (s *OTelSpan) End() {
	s.span.End()
}

func (s *OTelSpan) SetAttributes(attrs map[string]interface{}) {
	s.span.SetAttributes(toAttributes(attrs)...)
}

func (s *OTelSpan) SetStatus(code string, message string) {
	var statusCode codes.Code

	switch code {
	case "ok":
		statusCode = codes.Ok
	case "error":
		statusCode = codes.Error
	default:
		statusCode = codes.Unset
	}

	s.span.SetStatus(statusCode, message)
}

func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
}

func toAttributes(attrs map[string]interface{}) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))

	for key, value := range attrs {
		switch v := value.(type) {
		case string:
			out = append(out, attribute.String(key, v))
		case int:
			out = append(out, attribute.Int(key, v))
		case int64:
			out = append(out, attribute.Int64(key, v))
		case float64:
			out = append(out, attribute.Float64(key, v))
		case bool:
			out = append(out, attribute.Bool(key, v))
		default:
			out = append(out, attribute.String(key, fmt.Sprintf("%v", v)))
		}
	}

	return out
}

func (p *OTELProbe) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs map[string]interface{}) (context.Context, port.Span) {
	spanName := fmt.Sprintf("repository.%s.%s", entity, operation)

	standard := []attribute.KeyValue{
		attribute.String("repository.entity", entity),
		attribute.String("repository.operation", operation),
		attribute.String("component", "repository"),
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName,
		trace.WithAttributes(append(standard, toAttributes(attrs)...)...))

	return ctx, &OTelSpan{span: span}
}

func (p *OTELProbe) StartServiceSpan(ctx context.Context, service string, operation string, attrs map[string]interface{}) (context.Context, port.Span) {
	spanName := fmt.Sprintf("service.%s.%s", service, operation)

	standard := []attribute.KeyValue{
		attribute.String("service.name", service),
		attribute.String("service.operation", operation),
		attribute.String("component", "service"),
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName,
		trace.WithAttributes(append(standard, toAttributes(attrs)...)...))

	return ctx, &OTelSpan{span: span}
}

func (p *OTELProbe) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
	span := trace.SpanFromContext(ctx)

	span.SetAttributes(
		attribute.Int64("duration_ns", duration.Nanoseconds()),
		attribute.Bool("has_error", err != nil),
	)

	if p.metrics != nil {
		p.metrics.RecordDatabaseOperation(ctx, operation, entity)
	}

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		p.logger.ErrorContext(ctx, "Repository operation failed",
			"operation", operation,
			"entity", entity,
			"duration_ns", duration.Nanoseconds(),
			"error", err)

		return
	}

	span.SetStatus(codes.Ok, "")
}

func (p *OTELProbe) RecordRepositoryQuery(ctx context.Context, operation string, entity string, query string, args []interface{}) {
	// only the argument types are logged
	argTypes := make([]string, len(args))

	for i := range args {
		argTypes[i] = fmt.Sprintf("%T", args[i])
	}

	p.logger.DebugContext(ctx, "Executing repository query",
		"operation", operation,
		"entity", entity,
		"query", query,
		"args_types", argTypes)
}

func (p *OTELProbe) RecordServiceOperation(ctx context.Context, service string, operation string, duration time.Duration, err error) {
	span := trace.SpanFromContext(ctx)

	if domain.IsNotFound(err) {
		err = nil
	}

	span.SetAttributes(
		attribute.Int64("duration_ns", duration.Nanoseconds()),
		attribute.Bool("has_error", err != nil),
	)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		p.logger.WarnContext(ctx, "Service operation failed",
			"service", service,
			"operation", operation,
			"duration_ns", duration.Nanoseconds(),
			"error", err)

		return
	}

	span.SetStatus(codes.Ok, "")
}

func (p *OTELProbe) RecordBusinessEvent(ctx context.Context, event string, entity string, entityID int64, metadata map[string]interface{}) {
	span := trace.SpanFromContext(ctx)

	attrs := []attribute.KeyValue{
		attribute.String("entity", entity),
		attribute.Int64("entity_id", entityID),
	}

	span.AddEvent(event, trace.WithAttributes(append(attrs, toAttributes(metadata)...)...))

	if p.metrics != nil {
		p.metrics.RecordResourceOperation(ctx, entity, event)
	}

	p.logger.InfoContext(ctx, "Business event recorded",
		"event", event,
		"entity", entity,
		"entity_id", entityID,
		"metadata", metadata)
}

func (p *OTELProbe) RecordError(ctx context.Context, operation string, err error, metadata map[string]interface{}) {
	p.logger.ErrorContext(ctx, "Operation error recorded",
		"operation", operation,
		"error", err,
		"metadata", metadata)
}
