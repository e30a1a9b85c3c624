package usecase

import (
	"context"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
)

// AuthUseCase defines the business logic for registration, credential
// verification and principal resolution.
type AuthUseCase interface {
	// Register creates a new account with its first credential set.
	// Returns ErrUserAlreadyExists when the username or email is taken.
	Register(ctx context.Context, input *authDomain.RegisterInput) (*authDomain.AuthUser, error)

	// Login verifies credentials and issues a signed access token.
	// Unknown identifier and wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.TokenOutput, error)

	// ResolvePrincipal maps a verified token subject to the current Principal.
	// Returns ErrCredentialsNotFound when no credential record matches, for
	// example after the account was deleted while a token was still live.
	ResolvePrincipal(ctx context.Context, subject string) (*authDomain.Principal, error)
}

// AuthUserRepository defines persistence operations for credential records.
type AuthUserRepository interface {
	Create(ctx context.Context, user *authDomain.AuthUser) error
	GetByUsername(ctx context.Context, username string) (*authDomain.AuthUser, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*authDomain.AuthUser, error)
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *authDomain.Account) error
}
