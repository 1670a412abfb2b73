package oteltrace

import (
	"context"

	"pcshop/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type tracer struct{ t trace.Tracer }

// New returns a Tracer port backed by the globally registered otel tracer
// provider. Without a configured SDK provider the spans are no-ops.
func New(name string) observability.Tracer {
	if name == "" {
		name = "pcshop"
	}
	return &tracer{t: otel.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}
