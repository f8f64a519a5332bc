package instrument

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NewNoop returns instrumentation that records nothing. Used when exporting is
// disabled and in tests.
func NewNoop() Instrumentation {
	return &noopInstrumentation{
		tp: tracenoop.NewTracerProvider(),
		mp: metricnoop.NewMeterProvider(),
	}
}

type noopInstrumentation struct {
	tp trace.TracerProvider
	mp metric.MeterProvider
}

func (n *noopInstrumentation) Tracer(name string) trace.Tracer {
	return n.tp.Tracer(name)
}

func (n *noopInstrumentation) Meter(name string) metric.Meter {
	return n.mp.Meter(name)
}

func (n *noopInstrumentation) Shutdown(context.Context) error {
	return nil
}
