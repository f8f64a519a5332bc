package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gosignup/internal/pkg/goerror"
	"github.com/shandysiswandi/gosignup/internal/signup/entity"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SignUp validates in and returns a goerror wrapping the report on rejection.
func (s *Usecase) SignUp(ctx context.Context, in entity.SignUpRequest) error {
	ctx, span := s.startSpan(ctx, "SignUp")
	defer span.End()

	outcome, violations, err := s.Evaluate(in)
	if err != nil {
		slog.ErrorContext(ctx, "failed to evaluate signup request", "error", err)
		return goerror.NewServer(err)
	}

	s.record(ctx, outcome, violations)
	span.SetAttributes(attribute.String("signup.verdict", outcome.Verdict().String()))

	if !outcome.Accepted() {
		report := outcome.Report()
		slog.InfoContext(ctx, "signup request rejected", "username", in.Username, "fields", report.Fields())
		slog.DebugContext(ctx, "signup validation report", "report", report.Values(), "violations", len(violations))
		return goerror.NewInvalidInput(report)
	}

	slog.InfoContext(ctx, "signup request accepted", "username", in.Username)

	return nil
}

func (s *Usecase) record(ctx context.Context, outcome entity.Outcome, violations []entity.Violation) {
	if s.verdictCounter != nil {
		s.verdictCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("verdict", outcome.Verdict().String()),
		))
	}

	if s.violationCounter == nil {
		return
	}
	for _, v := range violations {
		s.violationCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("field", v.Field),
			attribute.String("kind", v.Kind.String()),
		))
	}
}
