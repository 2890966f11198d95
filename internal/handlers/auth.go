package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/ribbitly/backend/internal/apperrors"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/services"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userService *services.UserService
	jwtSecret   string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService *services.UserService) *AuthHandler {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "supersecretjwtkey"
	}
	return &AuthHandler{
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
}

// Signup handles user registration
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.CreateUserRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Register(req)
	if err != nil {
		if apperrors.IsValidation(err) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return toHTTPError(err)
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": user.ToCompact()})
}

// SignIn handles user authentication with email and password
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsAuthorization(err) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return toHTTPError(err)
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)), // Token expires in 72 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return "", err
	}
	return t, nil
}
