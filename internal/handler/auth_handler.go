package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sereneHealth/web-api/internal/auth"
	apperrors "github.com/sereneHealth/web-api/internal/errors"
	"github.com/sereneHealth/web-api/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
	logger      zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "User already exist"})
		}
		h.logger.Error().Err(err).Msg("register user")
		return c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{Message: "Error registering user"})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "User registered successfully"})
}

// Login godoc
// @Summary Login and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "User not found"})
		case errors.Is(err, apperrors.ErrIncorrectPassword):
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Incorrect password"})
		default:
			h.logger.Error().Err(err).Msg("login")
			return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Error logging in"})
		}
	}

	c.SetCookie(auth.NewSessionCookie(token))
	// "Login succesful" is the exact string the site frontend matches on.
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Login succesful"})
}

// Logout godoc
// @Summary Logout and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} errors.MessageResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(auth.ClearSessionCookie())
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Logout successfully"})
}
