package dto

import (
	"time"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
)

// UserResponse represents a credential record in API responses (excludes the password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AccountID string    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MapUserToResponse converts a domain auth user to an API response.
func MapUserToResponse(user *authDomain.AuthUser) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		AccountID: user.AccountID.String(),
		CreatedAt: user.CreatedAt,
	}
}

// TokenResponse contains the result of a successful login.
// SECURITY: The token is a bearer credential; anyone holding it acts as the account.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// MapTokenToResponse converts a domain token output to an API response.
func MapTokenToResponse(output *authDomain.TokenOutput) TokenResponse {
	return TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
	}
}
