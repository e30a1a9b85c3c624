// Package service provides technical services for authentication operations:
// signed access-token creation/verification and password hashing.
package service

import (
	"time"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
)

// TokenCodec creates and verifies signed, self-contained access tokens.
// Tokens carry subject, role, issuance and expiry; validity is entirely
// reconstructable from the token bytes, the shared secret and the current
// instant. No token is ever persisted.
type TokenCodec interface {
	// Create issues a signed token for the subject and role. The expiry is
	// the current instant plus the configured lifetime.
	Create(subject string, role authDomain.Role) (string, error)

	// Verify parses and validates a token, returning its claims.
	//
	// Every failure mode (malformed input, unsupported algorithm, bad
	// signature, expired token, missing subject, unknown role) returns
	// authDomain.ErrInvalidToken. Callers cannot tell the modes apart.
	Verify(token string) (*authDomain.TokenClaims, error)

	// Lifetime returns the configured token lifetime.
	Lifetime() time.Duration
}

// PasswordService defines password hashing and verification for account credentials.
type PasswordService interface {
	// Hash hashes a plain text password using Argon2id.
	Hash(plainPassword string) (string, error)

	// Compare performs a constant-time comparison between a plain password
	// and its hash. Returns true on match.
	Compare(plainPassword string, hashedPassword string) bool
}
