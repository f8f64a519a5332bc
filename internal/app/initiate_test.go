package app

import (
	"net/http"
	"testing"
	"time"

	"github.com/shandysiswandi/gosignup/internal/pkg/config"
	"github.com/shandysiswandi/gosignup/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "Explicit", env: map[string]string{"CONFIG_PATH": "/etc/gosignup.yaml", "LOCAL": "true"}, want: "/etc/gosignup.yaml"},
		{name: "Local", env: map[string]string{"LOCAL": "true"}, want: "./config/config.yaml"},
		{name: "Container", env: map[string]string{}, want: "/config/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := configPath(func(k string) string { return tt.env[k] })

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstrumentConfigAndServer(t *testing.T) {
	cfg, err := config.NewViperFromBytes("yaml", []byte(`
app:
  server:
    cors: "http://a.test, http://b.test"
    http:
      address: ":9090"
      read_timeout_seconds: 3
      read_header_timeout_seconds: 2
      write_timeout_seconds: 4
      idle_timeout_seconds: 5
instrument:
  enabled: true
  service_name: "gosignup"
  trace_sample_ratio: 0.5
  metric_interval_seconds: 10
  log_mask_fields: "password, confirmPassword"
  log_level: "debug"
`))
	require.NoError(t, err)

	ic := instrumentConfig(cfg)
	assert.True(t, ic.Enabled)
	assert.Equal(t, "gosignup", ic.ServiceName)
	assert.InDelta(t, 0.5, ic.TraceSampleRatio, 1e-9)
	assert.Equal(t, 10*time.Second, ic.MetricsInterval)
	assert.Equal(t, []string{"password", "confirmPassword"}, ic.MaskFields)
	assert.Equal(t, "debug", ic.LogLevel)

	opts := corsOptions(cfg)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, opts.AllowedOrigins)
	assert.Contains(t, opts.ExposedHeaders, router.HeaderCorrelationID)

	srv := newHTTPServer(cfg, http.NotFoundHandler())
	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 3*time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.ReadHeaderTimeout)
	assert.Equal(t, 4*time.Second, srv.WriteTimeout)
	assert.Equal(t, 5*time.Second, srv.IdleTimeout)
}
