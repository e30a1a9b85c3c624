package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/auth/http/dto"
	authUseCase "github.com/allisson/expense-tracker/internal/auth/usecase"
	"github.com/allisson/expense-tracker/internal/httputil"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUC authUseCase.AuthUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUC,
		logger:      logger,
	}
}

// RegisterHandler creates a new account with its first credential set.
// POST /v1/auth/register - No authentication required.
// Returns 201 Created with the new user, or 409 Conflict when the username or
// email is already taken.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input := &authDomain.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	user, err := h.authUseCase.Register(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("account registered",
		slog.String("username", user.Username),
		slog.String("account_id", user.AccountID.String()))

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// LoginHandler verifies credentials and issues a signed access token.
// POST /v1/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the token, or 401 Unauthorized on bad credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input := &authDomain.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	}

	output, err := h.authUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(output))
}
