package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-service/app/domain"
	"user-service/app/port"
	apperrors "user-service/app/utils/errors"
)

// UserHandler handles user registration and authentication HTTP requests
type UserHandler struct {
	userUsecase port.UserUsecase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase port.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// Register creates a new user account
// @Summary Register a new user
// @Description Validate the registration request, persist the user and register it with the identity provider
// @Tags users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration request"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	user, err := h.userUsecase.RegisterUser(ctx, &domain.RegisterUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return h.handleUserError(c, err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles,
	})
}

// Login authenticates a user and returns a token set
// @Summary Log in
// @Description Verify credentials and exchange them for an access token
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
	}

	token, err := h.userUsecase.Login(ctx, req.Username, req.Password)
	if err != nil {
		return h.handleUserError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		ExpiresIn:    token.ExpiresIn,
		RefreshToken: token.RefreshToken,
	})
}

// Logout revokes the caller's refresh token
// @Summary Log out
// @Description Revoke the supplied refresh token at the identity provider
// @Tags users
// @Accept json
// @Produce json
// @Param body body LogoutRequest true "Logout request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.userUsecase.Logout(ctx, req.RefreshToken); err != nil {
		return h.handleUserError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "logged out successfully",
	})
}

// handleUserError maps usecase errors to HTTP responses. Validation
// failures carry their specific message; everything unexpected collapses
// to a generic 500 so internals never leak to the caller.
func (h *UserHandler) handleUserError(c echo.Context, err error) error {
	switch {
	case domain.IsValidationError(err):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: domain.ErrInvalidCredentials.Error(),
		})
	default:
		h.logger.Error("request failed", "path", c.Path(),
			"code", apperrors.GetErrorCode(err), "error", err)
		return c.JSON(apperrors.GetHTTPStatusCode(err), ErrorResponse{
			Error: "internal server error",
		})
	}
}

// Request/Response types
type RegisterRequest struct {
	Username string   `json:"username" validate:"required,username"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8,password"`
	Roles    []string `json:"roles,omitempty"`
}

type RegisterResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
