package middleware

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/auth"
)

// principalKey is the echo context key the resolved principal is stored
// under.
const principalKey = "principal"

// PrincipalFrom returns the principal deposited by the auth middleware, or
// nil for an anonymous request.
func PrincipalFrom(c echo.Context) auth.Principal {
	p, _ := c.Get(principalKey).(auth.Principal)
	return p
}

// Authenticate requires a bearer token issued by either login mechanism. A
// local HS256 session token yields a SessionPrincipal; a Firebase ID token
// yields a ProviderPrincipal carrying the provider's claims.
func Authenticate(authClient *fbauth.Client, jwtSecret string) echo.MiddlewareFunc {
	return authenticate(authClient, jwtSecret, true)
}

// MaybeAuthenticate resolves a principal when a bearer token is present but
// lets anonymous requests through. Used on read endpoints that are open to
// everyone yet viewer-aware.
func MaybeAuthenticate(authClient *fbauth.Client, jwtSecret string) echo.MiddlewareFunc {
	return authenticate(authClient, jwtSecret, false)
}

func authenticate(authClient *fbauth.Client, jwtSecret string, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				if !required {
					return next(c)
				}
				return err
			}

			if claims, err := parseSessionToken(token, jwtSecret); err == nil {
				c.Set(principalKey, auth.SessionPrincipal{Username: claims.Email})
				return next(c)
			}

			attrs, err := verifyProviderToken(c.Request().Context(), authClient, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			c.Set(principalKey, auth.ProviderPrincipal{Attributes: attrs})
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}
	return parts[1], nil
}
