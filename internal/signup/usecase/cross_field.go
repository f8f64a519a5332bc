package usecase

import "github.com/shandysiswandi/gosignup/internal/signup/entity"

// passwordConfirmation is the declarative form of the password/confirmation
// equality, checked through the shared struct validator.
type passwordConfirmation struct {
	Password        string
	ConfirmPassword string `validate:"omitempty,eqfield=Password" message:"Passwords do not match."`
}

// CheckPasswordsMatch flags a non-blank confirmation that differs from password.
// A blank confirmation is left to the required rule.
func CheckPasswordsMatch(password, confirm string) []entity.Violation {
	if isBlank(confirm) || confirm == password {
		return nil
	}

	return violations(entity.FieldConfirmPassword, entity.KindMismatch, msgPasswordsDiffer)
}

func newPasswordConfirmation(req entity.SignUpRequest) passwordConfirmation {
	confirm := req.ConfirmPassword
	if isBlank(confirm) {
		confirm = ""
	}

	return passwordConfirmation{Password: req.Password, ConfirmPassword: confirm}
}
