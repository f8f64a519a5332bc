package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "TrueClientIP", headers: map[string]string{"True-Client-IP": "1.1.1.1"}, remote: "9.9.9.9:1", want: "1.1.1.1"},
		{name: "XRealIP", headers: map[string]string{"X-Real-IP": "2.2.2.2"}, remote: "9.9.9.9:1", want: "2.2.2.2"},
		{name: "XForwardedFor", headers: map[string]string{"X-Forwarded-For": "3.3.3.3, 10.0.0.1"}, remote: "9.9.9.9:1", want: "3.3.3.3"},
		{name: "InvalidHeaderFallsBack", headers: map[string]string{"X-Real-IP": "garbage"}, remote: "9.9.9.9:1", want: "9.9.9.9"},
		{name: "IPv6Remote", remote: "[::1]:8080", want: "::1"},
		{name: "NothingUsable", remote: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, realIP(r))
		})
	}
}
