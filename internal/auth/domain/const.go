// Package domain defines authentication and authorization domain models.
// Implements stateless bearer-token authentication: identity and role travel
// inside a signed token, and ownership of expense data hangs off the account.
package domain

// Role is the single role claim carried by an access token.
// There is no policy engine behind it; the claim exists so tokens are
// self-describing and an operator account can be told apart from a regular one.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin is reserved for operator accounts created via the CLI.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}
