package entity

import (
	"testing"

	"github.com/shandysiswandi/gosignup/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestNewOutcome(t *testing.T) {
	t.Run("EmptyReportAccepts", func(t *testing.T) {
		out := NewOutcome(validator.NewReport())

		assert.True(t, out.Accepted())
		assert.Equal(t, VerdictAccepted, out.Verdict())
		assert.Nil(t, out.Report())
		assert.Equal(t, "accepted", out.Verdict().String())
	})

	t.Run("NilReportAccepts", func(t *testing.T) {
		assert.True(t, NewOutcome(nil).Accepted())
	})

	t.Run("NonEmptyReportRejects", func(t *testing.T) {
		report := validator.NewReport()
		report.Merge(FieldEmail, "Email is required.")

		out := NewOutcome(report)

		assert.False(t, out.Accepted())
		assert.Equal(t, "rejected", out.Verdict().String())
		assert.Same(t, report, out.Report())
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "required", KindRequired.String())
	assert.Equal(t, "length_out_of_range", KindLengthOutOfRange.String())
	assert.Equal(t, "pattern_mismatch", KindPatternMismatch.String())
	assert.Equal(t, "format_invalid", KindFormatInvalid.String())
	assert.Equal(t, "mismatch", KindMismatch.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
