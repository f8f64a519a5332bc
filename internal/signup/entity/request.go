package entity

// Field names used as report keys, in declaration order.
const (
	FieldUsername        = "Username"
	FieldEmail           = "Email"
	FieldPhoneNumber     = "PhoneNumber"
	FieldPassword        = "Password"
	FieldConfirmPassword = "ConfirmPassword"
)

// SignUpRequest is the registration payload under validation.
//
// Absent values are empty strings; rules treat empty and whitespace-only alike.
type SignUpRequest struct {
	Username        string
	Email           string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
}
