package inbound

// SignUpRequest is the JSON body of a sign-up submission. Every key is optional
// and may be null.
type SignUpRequest struct {
	Username        *string `json:"username" example:"john_doe"`
	Email           *string `json:"email" example:"john@example.com"`
	PhoneNumber     *string `json:"phoneNumber" example:"+1 555-123-4567"`
	Password        *string `json:"password" example:"Secret123!"`
	ConfirmPassword *string `json:"confirmPassword" example:"Secret123!"`
}

type SignUpResponse struct{}

func (SignUpResponse) Message() string {
	return "Sign-up data successfully validated and received!"
}
