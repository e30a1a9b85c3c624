package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/expense-tracker/internal/auth/service"
	authUseCase "github.com/allisson/expense-tracker/internal/auth/usecase"
	apperrors "github.com/allisson/expense-tracker/internal/errors"
	"github.com/allisson/expense-tracker/internal/httputil"
)

// AuthenticationMiddleware attaches the authenticated principal to the request
// context when a valid Bearer token is presented.
//
// The middleware:
// 1. Skips token processing entirely for paths on the public prefix list
// 2. Extracts the Bearer token from the Authorization header (case-insensitive)
// 3. Verifies the token signature and expiry via the TokenCodec
// 4. Resolves the token subject to the current Principal
// 5. Stores the principal in the request context for downstream handlers
//
// It never writes a response. A missing header, a malformed header, an invalid
// token or a vanished subject all leave the request anonymous and pass it
// along; rejecting anonymous requests on protected routes is the job of
// RequireAuthenticated. Public endpoints therefore work with or without an
// Authorization header, including an invalid one.
func AuthenticationMiddleware(
	tokenCodec authService.TokenCodec,
	authUC authUseCase.AuthUseCase,
	publicPathPrefixes []string,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range publicPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// A principal attached earlier in the chain is never overwritten
		if _, ok := GetPrincipal(c.Request.Context()); ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication skipped: malformed authorization header")
			c.Next()
			return
		}

		plainToken := authHeader[len(bearerPrefix):]
		if plainToken == "" {
			c.Next()
			return
		}

		claims, err := tokenCodec.Verify(plainToken)
		if err != nil {
			logger.Debug("authentication failed: invalid token")
			c.Next()
			return
		}

		principal, err := authUC.ResolvePrincipal(c.Request.Context(), claims.Subject)
		if err != nil {
			logger.Debug("authentication failed: principal resolution",
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("username", principal.Username),
			slog.String("account_id", principal.AccountID.String()))

		c.Next()
	}
}

// RequireAuthenticated rejects anonymous requests with 401 Unauthorized.
//
// MUST be used after AuthenticationMiddleware. Route groups that serve
// protected resources mount this; the rejection is centralized here so
// handlers can assume a principal is always present.
func RequireAuthenticated(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			logger.Debug("request rejected: no authenticated principal",
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
