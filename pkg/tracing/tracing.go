package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cadastro"

// AddSpanError marca um span como erro
func AddSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// AddHTTPAttributes adiciona atributos específicos de HTTP
func AddHTTPAttributes(span trace.Span, method string, route string, statusCode int) {
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", statusCode),
	)
}

func GetTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)

	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// CreateChildSpan cria um span filho com contexto
func CreateChildSpan(ctx context.Context, name string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// HandlerSpan starts the span of an HTTP handler for the given resource operation.
func HandlerSpan(ctx context.Context, resource, operation, method, route string) (context.Context, trace.Span) {
	return CreateChildSpan(ctx, "handler."+resource+"."+operation, []attribute.KeyValue{
		attribute.String("handler.operation", operation),
		attribute.String("handler.method", method),
		attribute.String("handler.path", route),
	})
}
