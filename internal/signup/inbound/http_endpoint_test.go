package inbound

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gosignup/internal/pkg/goerror"
	"github.com/shandysiswandi/gosignup/internal/pkg/instrument"
	"github.com/shandysiswandi/gosignup/internal/pkg/router"
	"github.com/shandysiswandi/gosignup/internal/pkg/validator"
	"github.com/shandysiswandi/gosignup/internal/signup/entity"
	"github.com/shandysiswandi/gosignup/internal/signup/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	got entity.SignUpRequest
	err error
}

func (s *stubUsecase) SignUp(_ context.Context, in entity.SignUpRequest) error {
	s.got = in
	return s.err
}

func newSignupRouter(t *testing.T) *router.Router {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	r := router.NewRouter(router.Config{Instrument: instrument.NewNoop()})
	RegisterHTTPEndpoint(r, usecase.New(usecase.Dependency{Validator: v, Instrument: instrument.NewNoop()}))

	return r
}

func postSignup(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHTTPEndpoint_SignUp(t *testing.T) {
	r := newSignupRouter(t)

	t.Run("Accepted", func(t *testing.T) {

		// Arrange
		body := `{"username":"john_doe","email":"john@example.com","phoneNumber":"+1 555-123-4567","password":"Secret123!","confirmPassword":"Secret123!"}`

		// Act
		rec := postSignup(r, body)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Sign-up data successfully validated and received!","data":{}}`, rec.Body.String())
	})

	t.Run("EveryFieldMissing", func(t *testing.T) {

		// Arrange
		body := `{"username":null}`

		// Act
		rec := postSignup(r, body)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t,
			`{"message":"Validation error","errors":{`+
				`"Username":["Username is required."],`+
				`"Email":["Email is required."],`+
				`"PhoneNumber":["Phone number is required."],`+
				`"Password":["Password is required."],`+
				`"ConfirmPassword":["Confirm Password is required."]}}`+"\n",
			rec.Body.String(),
		)
	})

	t.Run("PasswordMismatchReportedOnce", func(t *testing.T) {

		// Arrange
		body := `{"username":"john_doe","email":"john@example.com","phoneNumber":"+1 555-123-4567","password":"Secret123!","confirmPassword":"Secret123?"}`

		// Act
		rec := postSignup(r, body)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t,
			`{"message":"Validation error","errors":{"ConfirmPassword":["Passwords do not match."]}}`,
			rec.Body.String(),
		)
	})

	t.Run("ShortPassword", func(t *testing.T) {

		// Arrange
		body := `{"username":"john_doe","email":"john@example.com","phoneNumber":"+1 555-123-4567","password":"short","confirmPassword":"short"}`

		// Act
		rec := postSignup(r, body)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t,
			`{"message":"Validation error","errors":{"Password":[`+
				`"Password must be at least 8 characters long.",`+
				`"Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character."]}}`,
			rec.Body.String(),
		)
	})

	t.Run("SameInputSameBody", func(t *testing.T) {

		// Arrange
		body := `{"username":"ab","email":"not-an-email","phoneNumber":"12","password":"x","confirmPassword":"y"}`

		// Act
		first := postSignup(r, body)
		second := postSignup(r, body)

		// Assert
		assert.Equal(t, http.StatusBadRequest, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("MalformedBody", func(t *testing.T) {
		for _, body := range []string{``, `{`, `[]`, `{"username":1}`, `{"nickname":"x"}`, `{} {}`} {

			// Act
			rec := postSignup(r, body)

			// Assert
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String(), body)
		}
	})
}

func TestHTTPEndpoint_SignUp_MapsBody(t *testing.T) {

	// Arrange
	stub := &stubUsecase{}
	r := router.NewRouter(router.Config{})
	RegisterHTTPEndpoint(r, stub)

	// Act
	rec := postSignup(r, `{"username":"gopher","email":null,"password":"p"}`)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.SignUpRequest{Username: "gopher", Password: "p"}, stub.got)
}

func TestHTTPEndpoint_SignUp_UsecaseFault(t *testing.T) {

	// Arrange
	stub := &stubUsecase{err: goerror.NewServer(errors.New("validator exploded"))}
	r := router.NewRouter(router.Config{})
	RegisterHTTPEndpoint(r, stub)

	// Act
	rec := postSignup(r, `{}`)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}
