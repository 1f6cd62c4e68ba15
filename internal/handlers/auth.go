package handlers

import (
	"net/http"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/middleware"
	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/services"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userService  services.UserService
	firebaseAuth *fbauth.Client
	jwtSecret    string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserService, firebaseAuthClient *fbauth.Client, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		firebaseAuth: firebaseAuthClient,
		jwtSecret:    jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/firebase-login", h.FirebaseLogin)
}

// RegisterSessionRoutes registers routes that need an authenticated caller
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.GET("/auth/session", h.Session)
}

// Register handles local user registration with email and password
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": user})
}

// Login handles local user authentication with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// FirebaseLogin verifies a Firebase ID token, creates the account on first
// login, and issues a local session token.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req FirebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if h.firebaseAuth == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Identity provider login not configured")
	}

	token, err := h.firebaseAuth.VerifyIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "ID token carries no email")
	}
	name, _ := token.Claims["name"].(string)

	user, err := h.userService.EnsureProviderAccount(email, name, models.ProviderFirebase)
	if err != nil {
		return toHTTPError(err)
	}

	localJWT, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate local JWT")
	}
	return c.JSON(http.StatusOK, echo.Map{"token": localJWT, "user": user})
}

// Session returns the account behind the current principal, whichever login
// mechanism produced it.
func (h *AuthHandler) Session(c echo.Context) error {
	user, err := h.userService.Session(middleware.PrincipalFrom(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)), // Token expires in 72 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
