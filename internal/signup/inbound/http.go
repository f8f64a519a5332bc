package inbound

import (
	"context"

	"github.com/shandysiswandi/gosignup/internal/pkg/router"
	"github.com/shandysiswandi/gosignup/internal/signup/entity"
)

type uc interface {
	SignUp(ctx context.Context, in entity.SignUpRequest) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/signup", end.SignUp)
}
