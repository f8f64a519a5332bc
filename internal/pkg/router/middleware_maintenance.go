package router

import (
	"net/http"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gosignup/internal/pkg/config"
	"github.com/shandysiswandi/gosignup/internal/pkg/goerror"
)

// middlewareMaintenance answers 503 for the route patterns listed in
// app.maintenance.endpoints. The list is read on every request so a reloaded
// config takes effect without a restart.
func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg != nil && lo.Contains(cfg.GetArray("app.maintenance.endpoints"), matchedRoutePath(r)) {
				errorCodec(r.Context(), w, goerror.NewBusiness("Service is under maintenance", goerror.CodeUnavailable))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
