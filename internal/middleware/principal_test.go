package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/auth"
	"github.com/skillshare-platform/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signSessionToken(t *testing.T, email string) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: 1,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runRequest(t *testing.T, mw echo.MiddlewareFunc, header string) (auth.Principal, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var principal auth.Principal
	err := mw(func(c echo.Context) error {
		principal = PrincipalFrom(c)
		return nil
	})(c)
	return principal, err
}

func TestAuthenticateSessionToken(t *testing.T) {
	token := signSessionToken(t, "u@example.com")

	principal, err := runRequest(t, Authenticate(nil, testSecret), "Bearer "+token)
	require.NoError(t, err)

	email, err := auth.ResolveEmail(principal)
	require.NoError(t, err)
	assert.Equal(t, "u@example.com", email)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	// not a session token, and no identity provider configured
	_, err := runRequest(t, Authenticate(nil, testSecret), "Bearer not-a-token")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateRequiresHeader(t *testing.T) {
	_, err := runRequest(t, Authenticate(nil, testSecret), "")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	_, err = runRequest(t, Authenticate(nil, testSecret), "Basic dXNlcjpwYXNz")
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestMaybeAuthenticateAllowsAnonymous(t *testing.T) {
	principal, err := runRequest(t, MaybeAuthenticate(nil, testSecret), "")
	require.NoError(t, err)
	assert.Nil(t, principal)

	// a bad token is still rejected when supplied
	_, err = runRequest(t, MaybeAuthenticate(nil, testSecret), "Bearer not-a-token")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
