package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/shandysiswandi/gosignup/internal/pkg/config"
	"github.com/shandysiswandi/gosignup/internal/pkg/instrument"
	"github.com/shandysiswandi/gosignup/internal/pkg/router"
	"github.com/shandysiswandi/gosignup/internal/pkg/uid"
	"github.com/shandysiswandi/gosignup/internal/pkg/validator"
)

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

// configPath resolves CONFIG_PATH, then the container path, or the working
// directory copy when LOCAL=true.
func configPath(getenv func(string) string) string {
	if p := getenv("CONFIG_PATH"); p != "" {
		return p
	}
	if getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func (a *App) initConfig() {
	cfg, err := config.NewViper(configPath(os.Getenv))
	if err != nil {
		fatal("failed to init config", err)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // TZ is advisory
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func instrumentConfig(cfg config.Config) *instrument.Config {
	return &instrument.Config{
		Enabled:          cfg.GetBool("instrument.enabled"),
		ServiceName:      cfg.GetString("instrument.service_name"),
		ServiceVersion:   cfg.GetString("instrument.service_version"),
		Environment:      cfg.GetString("instrument.env"),
		OTLPEndpoint:     cfg.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       cfg.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: cfg.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  cfg.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       cfg.GetArray("instrument.log_mask_fields"),
		LogLevel:         cfg.GetString("instrument.log_level"),
	}
}

func (a *App) initInstrument() {
	ins, err := instrument.New(a.ctx, instrumentConfig(a.config))
	if err != nil {
		fatal("failed to init instrumentation", err)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.uuid = uid.NewUUID()

	v, err := validator.NewV10Validator()
	if err != nil {
		fatal("failed to init validation v10 validator", err)
	}
	a.validator = v
}

// corsOptions allows the configured browser origins to call the JSON API and
// read the correlation id.
func corsOptions(cfg config.Config) cors.Options {
	return cors.Options{
		AllowedOrigins: cfg.GetArray("app.server.cors"),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", router.HeaderCorrelationID, router.HeaderRequestID},
		ExposedHeaders: []string{router.HeaderCorrelationID},
	}
}

func newHTTPServer(cfg config.Config, h http.Handler) *http.Server {
	const prefix = "app.server.http."

	return &http.Server{
		Addr:              cfg.GetString(prefix + "address"),
		Handler:           h,
		ReadTimeout:       cfg.GetSecond(prefix + "read_timeout_seconds"),
		ReadHeaderTimeout: cfg.GetSecond(prefix + "read_header_timeout_seconds"),
		WriteTimeout:      cfg.GetSecond(prefix + "write_timeout_seconds"),
		IdleTimeout:       cfg.GetSecond(prefix + "idle_timeout_seconds"),
	}
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	a.httpServer = newHTTPServer(a.config, cors.New(corsOptions(a.config)).Handler(a.router))
}

func (a *App) initClosers() {
	a.closers = append(a.closers,
		closer{name: "Instrument", fn: a.ins.Shutdown},
		closer{name: "Config", fn: func(context.Context) error { return a.config.Close() }},
	)
}
