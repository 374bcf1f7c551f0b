package domain

import "time"

// Portal roles. The role is self-asserted: there is no credential check
// behind it, only a signed token so the gate survives a stateless server.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the two portal roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin
}

// RoleTokenIssuer issues a signed token carrying a portal role.
type RoleTokenIssuer interface {
	Issue(role string, expiry time.Duration) (string, error)
}

// RoleTokenVerifier verifies a token and returns the role it carries.
type RoleTokenVerifier interface {
	Verify(token string) (role string, err error)
}
