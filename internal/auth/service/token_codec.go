package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	"github.com/allisson/expense-tracker/internal/clock"
	apperrors "github.com/allisson/expense-tracker/internal/errors"
)

// accessTokenClaims is the wire format of an access token: the registered
// subject/iat/exp claims plus the single role claim.
type accessTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// jwtTokenCodec implements TokenCodec using HS256-signed JWTs.
// The codec is a pure function of (input, secret, clock); it holds no state
// and is safe for concurrent use.
type jwtTokenCodec struct {
	secret   []byte
	lifetime time.Duration
	clock    clock.Clock
}

// NewTokenCodec creates a TokenCodec signing with the given symmetric secret.
// The lifetime should be short: there is no refresh or revocation mechanism,
// so an issued token stays valid until its stated expiry.
func NewTokenCodec(secret []byte, lifetime time.Duration, clk clock.Clock) (TokenCodec, error) {
	if len(secret) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "signing secret is required")
	}
	if lifetime <= 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token lifetime must be positive")
	}

	return &jwtTokenCodec{
		secret:   secret,
		lifetime: lifetime,
		clock:    clk,
	}, nil
}

// Create issues a signed token embedding subject, role, issued-at and expiry.
func (c *jwtTokenCodec) Create(subject string, role authDomain.Role) (string, error) {
	if subject == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "subject is required")
	}
	if !role.Valid() {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "unknown role")
	}

	now := c.clock.Now()
	claims := accessTokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.lifetime)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return token, nil
}

// Verify validates the token signature and expiry and extracts the claims.
// All failures fold into authDomain.ErrInvalidToken; the signature is checked
// before any claim is trusted, and claims of a badly signed token are never
// inspected.
func (c *jwtTokenCodec) Verify(tokenString string) (*authDomain.TokenClaims, error) {
	claims := &accessTokenClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	role := authDomain.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return nil, authDomain.ErrInvalidToken
	}

	return &authDomain.TokenClaims{
		Subject: claims.Subject,
		Role:    role,
	}, nil
}

// Lifetime returns the configured token lifetime.
func (c *jwtTokenCodec) Lifetime() time.Duration {
	return c.lifetime
}
