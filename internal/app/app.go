package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gosignup/internal/pkg/config"
	"github.com/shandysiswandi/gosignup/internal/pkg/instrument"
	"github.com/shandysiswandi/gosignup/internal/pkg/router"
	"github.com/shandysiswandi/gosignup/internal/pkg/uid"
	"github.com/shandysiswandi/gosignup/internal/pkg/validator"
)

// closer releases one resource on shutdown.
type closer struct {
	name string
	fn   func(context.Context) error
}

// App owns the process-wide dependencies of the sign-up service.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	config    config.Config
	ins       instrument.Instrumentation
	validator validator.Validator
	uuid      uid.StringID

	router     *router.Router
	httpServer *http.Server

	closers []closer
}

// New wires the application from the config file and exits the process when a
// dependency cannot be built.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{ctx: ctx, cancel: cancel}

	for _, step := range []func(){
		a.initConfig,
		a.initInstrument,
		a.initLibraries,
		a.initHTTPServer,
		a.initModules,
		a.initClosers,
	} {
		step()
	}

	return a
}
