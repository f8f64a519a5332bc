package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "InvalidInput", err: NewInvalidInput(errors.New("x")), want: http.StatusBadRequest},
		{name: "InvalidFormat", err: NewInvalidFormat(), want: http.StatusBadRequest},
		{name: "NotFound", err: NewBusiness("missing", CodeNotFound), want: http.StatusNotFound},
		{name: "MethodNotAllowed", err: NewBusiness("no", CodeMethodNotAllowed), want: http.StatusMethodNotAllowed},
		{name: "Unavailable", err: NewBusiness("down", CodeUnavailable), want: http.StatusServiceUnavailable},
		{name: "Server", err: NewServer(errors.New("boom")), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			require.True(t, errors.As(tt.err, &gerr))
			assert.Equal(t, tt.want, gerr.StatusCode())
		})
	}
}

func TestNewInvalidInput_Unwrap(t *testing.T) {
	cause := errors.New("field broke")

	err := NewInvalidInput(cause)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Validation error", gerr.Msg())
	assert.Equal(t, TypeValidation, gerr.Type())
	assert.Equal(t, CodeInvalidInput, gerr.Code())
	assert.Equal(t, "field broke", gerr.Error())
}

func TestNewInvalidFormat_Message(t *testing.T) {
	assert.Equal(t, "Invalid request body", NewInvalidFormat().Error())
	assert.Equal(t, "bad json", NewInvalidFormat("bad json").Error())
}

func TestError_String(t *testing.T) {
	err := NewServer(errors.New("db down"))

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t,
		"Error Type: ERROR_TYPE_SERVER, Code: ERROR_CODE_INTERNAL, Message: Internal server error, Underlying Error: db down",
		gerr.String(),
	)
}
