package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gosignup/internal/pkg/instrument"
	"github.com/shandysiswandi/gosignup/internal/pkg/validator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Usecase struct {
	validator validator.Validator
	ins       instrument.Instrumentation
	rules     []FieldValidator

	verdictCounter   metric.Int64Counter
	violationCounter metric.Int64Counter
}

type Dependency struct {
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	meter := dep.Instrument.Meter("signup.usecase")

	verdictCounter, err := meter.Int64Counter("signup.verdicts", metric.WithDescription("Number of sign-up requests by verdict"))
	if err != nil {
		slog.Error("failed to create signup verdict counter", "error", err)
	}

	violationCounter, err := meter.Int64Counter("signup.violations", metric.WithDescription("Number of rule violations by field and kind"))
	if err != nil {
		slog.Error("failed to create signup violation counter", "error", err)
	}

	return &Usecase{
		validator:        dep.Validator,
		ins:              dep.Instrument,
		rules:            FieldValidators(),
		verdictCounter:   verdictCounter,
		violationCounter: violationCounter,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("signup.usecase").Start(ctx, name)
}
