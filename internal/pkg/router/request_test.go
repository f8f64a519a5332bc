package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gosignup/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_DecodeBody(t *testing.T) {
	type payload struct {
		Name *string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    *string
	}{
		{name: "Valid", body: `{"name":"gopher"}`, want: strPtr("gopher")},
		{name: "Null", body: `{"name":null}`},
		{name: "EmptyObject", body: `{}`},
		{name: "Empty", body: ``, wantErr: true},
		{name: "Malformed", body: `{"name":`, wantErr: true},
		{name: "UnknownKey", body: `{"nick":"x"}`, wantErr: true},
		{name: "TrailingData", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
		{name: "WrongType", body: `{"name":7}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{Request: httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))}

			var dst payload
			err := req.DecodeBody(&dst)

			if tt.wantErr {
				var gerr *goerror.Error
				require.True(t, errors.As(err, &gerr))
				assert.Equal(t, goerror.CodeInvalidFormat, gerr.Code())
				assert.Equal(t, "Invalid request body", gerr.Msg())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, dst.Name)
		})
	}
}

func TestRequest_DecodeBody_NilRequest(t *testing.T) {
	var r *Request
	assert.Error(t, r.DecodeBody(&struct{}{}))
}

func strPtr(s string) *string { return &s }
