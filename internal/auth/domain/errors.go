package domain

import (
	"github.com/allisson/expense-tracker/internal/errors"
)

// Authentication errors.
//
// Everything that can go wrong while authenticating (missing token, bad
// signature, expired token, vanished account, wrong password) wraps
// errors.ErrUnauthorized so the boundary layer surfaces a single
// indistinguishable outcome. The distinct values exist for logs and tests,
// never for clients.
var (
	// ErrInvalidToken indicates a token that is malformed, tampered with or expired.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrCredentialsNotFound indicates no account exists for a token subject,
	// e.g. the account was deleted after the token was issued.
	ErrCredentialsNotFound = errors.Wrap(errors.ErrUnauthorized, "credentials not found")

	// ErrInvalidCredentials indicates a failed login attempt. Covers both an
	// unknown identifier and a wrong password to prevent account enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrUserAlreadyExists indicates the username or email is already taken.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "username or email already taken")

	// ErrAuthUserNotFound indicates no credential record matches the lookup.
	// Repositories return it; use cases fold it into ErrInvalidCredentials or
	// ErrCredentialsNotFound before it can reach a client.
	ErrAuthUserNotFound = errors.Wrap(errors.ErrNotFound, "auth user not found")
)
