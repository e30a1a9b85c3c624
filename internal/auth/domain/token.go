package domain

// TokenClaims are the verified claims extracted from a valid access token.
// Only subject and role survive verification; issuance and expiry instants are
// consumed during validation and not exposed to callers.
type TokenClaims struct {
	Subject string
	Role    Role
}
