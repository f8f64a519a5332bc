package usecase

import (
	"testing"

	"github.com/shandysiswandi/gosignup/internal/signup/entity"
	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordsMatch(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		want     []entity.Violation
	}{
		{name: "Equal", password: "Secret123!", confirm: "Secret123!", want: nil},
		{name: "BlankConfirmIsSkipped", password: "Secret123!", confirm: " ", want: nil},
		{name: "BothEmpty", password: "", confirm: "", want: nil},
		{
			name:     "Different",
			password: "Secret123!",
			confirm:  "Other123!",
			want: []entity.Violation{{
				Field:   entity.FieldConfirmPassword,
				Kind:    entity.KindMismatch,
				Message: msgPasswordsDiffer,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPasswordsMatch(tt.password, tt.confirm))
		})
	}
}

func TestNewPasswordConfirmation(t *testing.T) {
	got := newPasswordConfirmation(entity.SignUpRequest{Password: "Secret123!", ConfirmPassword: "  \t"})

	assert.Equal(t, passwordConfirmation{Password: "Secret123!", ConfirmPassword: ""}, got)
}
