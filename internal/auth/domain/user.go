package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser holds the credentials of an account holder.
//
// Username and Email are each globally unique (enforced at creation, not at
// token time) and either one may be used as the login identifier.
// PasswordHash is an Argon2id hash and must never be logged or returned.
type AuthUser struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	// AccountID references the account that owns this user's expenses.
	AccountID uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the authenticated identity attached to a request.
//
// It is built once per request from a verified token subject, is immutable for
// the request's duration and is discarded afterwards; nothing caches it across
// requests.
type Principal struct {
	Username string
	Role     Role
	// AccountID is the owned-resource root: every expense the principal may
	// touch carries this account id as its owner.
	AccountID uuid.UUID
}

// NewPrincipal derives the request principal from resolved credentials.
func NewPrincipal(user *AuthUser) *Principal {
	return &Principal{
		Username:  user.Username,
		Role:      user.Role,
		AccountID: user.AccountID,
	}
}
