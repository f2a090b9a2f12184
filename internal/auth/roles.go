package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// AuthorityPrefix is prepended to raw role claims before policy matching.
// The policy table only ever sees the prefixed form.
const AuthorityPrefix = "ROLE_"

const principalKey = "auth_principal"

// Principal is the request-scoped security context: the authenticated
// identity plus its granted authority strings. It lives in the Fiber
// request locals and is discarded with the request.
type Principal struct {
	Email       string
	Authorities []string
}

// HasAuthority reports whether the principal was granted the authority.
func (p *Principal) HasAuthority(authority string) bool {
	if p == nil {
		return false
	}
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// HasAnyAuthority reports whether the principal holds at least one of the
// given authorities.
func (p *Principal) HasAnyAuthority(authorities ...string) bool {
	for _, a := range authorities {
		if p.HasAuthority(a) {
			return true
		}
	}
	return false
}

// Authority normalizes a raw role claim to its prefixed authority form,
// e.g. role "ADMIN" becomes "ROLE_ADMIN".
func Authority(role string) string {
	return AuthorityPrefix + strings.ToUpper(role)
}

// RoleAuthority is the authority form of a domain role.
func RoleAuthority(role domain.Role) string {
	return Authority(string(role))
}

// SetPrincipal stores the principal in the request context. It is a no-op
// when a principal is already present so a request is never
// double-authenticated.
func SetPrincipal(c *fiber.Ctx, p *Principal) {
	if _, ok := PrincipalFromContext(c); ok {
		return
	}
	c.Locals(principalKey, p)
}

// ClearPrincipal removes any partially established principal.
func ClearPrincipal(c *fiber.Ctx) {
	c.Locals(principalKey, nil)
}

// PrincipalFromContext retrieves the authenticated principal, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}
