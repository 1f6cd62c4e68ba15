package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/auth"
	"github.com/skillshare-platform/backend/internal/middleware"
	"github.com/skillshare-platform/backend/internal/services"
)

// toHTTPError maps service error kinds to HTTP statuses. Unrecognized errors
// surface as 500 without leaking internals.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated),
		errors.Is(err, auth.ErrUnsupportedPrincipal),
		errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrSelfFollow), errors.Is(err, services.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// callerEmail resolves the authenticated caller's email from the request
// principal.
func callerEmail(c echo.Context) (string, error) {
	email, err := auth.ResolveEmail(middleware.PrincipalFrom(c))
	if err != nil {
		return "", toHTTPError(err)
	}
	return email, nil
}

// viewerEmail is like callerEmail but returns "" for anonymous requests.
func viewerEmail(c echo.Context) string {
	email, err := auth.ResolveEmail(middleware.PrincipalFrom(c))
	if err != nil {
		return ""
	}
	return email
}
