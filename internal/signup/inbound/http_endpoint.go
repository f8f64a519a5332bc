package inbound

import (
	"github.com/shandysiswandi/gosignup/internal/pkg/router"
	"github.com/shandysiswandi/gosignup/internal/signup/entity"
)

// HTTPEndpoint exposes HTTP handlers for sign-up submissions.
type HTTPEndpoint struct {
	uc uc
}

// SignUp validates a sign-up submission.
// @Summary Validate sign-up data
// @Description Runs every field rule and the password confirmation check. All failing rules are reported per field in a stable order.
// @Tags Signup
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Sign-up payload"
// @Success 200 {object} router.successResponse{data=SignUpResponse} "Sign-up data accepted"
// @Failure 400 {object} router.errorResponse "Invalid request body or validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/signup [post]
func (h *HTTPEndpoint) SignUp(r *router.Request) (any, error) {
	var req SignUpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.SignUp(r.Context(), entity.SignUpRequest{
		Username:        deref(req.Username),
		Email:           deref(req.Email),
		PhoneNumber:     deref(req.PhoneNumber),
		Password:        deref(req.Password),
		ConfirmPassword: deref(req.ConfirmPassword),
	})
	if err != nil {
		return nil, err
	}

	return SignUpResponse{}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
