package usecase

import (
	"errors"

	"github.com/shandysiswandi/gosignup/internal/pkg/validator"
	"github.com/shandysiswandi/gosignup/internal/signup/entity"
)

// Evaluate runs every rule against req and decides the outcome.
//
// Field rules run first in declaration order, then the explicit cross-field
// check, then the declarative one. Every message goes through Report.Merge so a
// mismatch flagged by several passes is reported once. The second return value
// lists every violation produced, duplicates included, for diagnostics.
func (s *Usecase) Evaluate(req entity.SignUpRequest) (entity.Outcome, []entity.Violation, error) {
	report := validator.NewReport()
	var all []entity.Violation

	for _, rule := range s.rules {
		all = append(all, rule.Validate(req)...)
	}
	all = append(all, CheckPasswordsMatch(req.Password, req.ConfirmPassword)...)

	for _, v := range all {
		report.Merge(v.Field, v.Message)
	}

	if s.validator != nil {
		if err := s.validator.Validate(newPasswordConfirmation(req)); err != nil {
			var declared *validator.Report
			if !errors.As(err, &declared) {
				return entity.Outcome{}, nil, err
			}

			for _, field := range declared.Fields() {
				for _, msg := range declared.Messages(field) {
					all = append(all, entity.Violation{Field: field, Kind: entity.KindMismatch, Message: msg})
				}
			}
			report.MergeReport(declared)
		}
	}

	return entity.NewOutcome(report), all, nil
}
