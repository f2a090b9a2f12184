package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Decision is the outcome of evaluating the policy for a request.
type Decision int

const (
	// DecisionAllow lets the request through to business handlers.
	DecisionAllow Decision = iota
	// DecisionUnauthenticated denies a request that carried no valid
	// principal; surfaced as 401 with a structured body.
	DecisionUnauthenticated
	// DecisionForbidden denies an authenticated request lacking the
	// required authority; surfaced as 403 plain text.
	DecisionForbidden
)

// Requirement decides whether a principal (nil when unauthenticated) may
// access a matched path.
type Requirement func(p *Principal) bool

// PermitAll allows everyone, authenticated or not.
func PermitAll(*Principal) bool { return true }

// Authenticated requires any principal.
func Authenticated(p *Principal) bool { return p != nil }

// HasAnyAuthority requires at least one of the given authorities.
func HasAnyAuthority(authorities ...string) Requirement {
	return func(p *Principal) bool {
		return p.HasAnyAuthority(authorities...)
	}
}

// Rule binds a path pattern to its access requirement. Patterns are either
// exact paths or a prefix followed by "/**".
type Rule struct {
	Pattern  string
	Requires Requirement
}

// Policy is an ordered rule table evaluated top-down, first match wins.
// Declaration order, not pattern specificity, resolves overlaps, so an
// admin rule listed before a broader patient prefix takes precedence.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from ordered rules.
func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy is the hospital access table.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Pattern: "/", Requires: PermitAll},
		{Pattern: "/home", Requires: PermitAll},
		{Pattern: "/hospital/**", Requires: PermitAll},
		{Pattern: "/health/**", Requires: PermitAll},
		{Pattern: "/api/login", Requires: PermitAll},
		{Pattern: "/api/patients/register", Requires: PermitAll},
		{Pattern: "/api/appointments", Requires: PermitAll},
		{Pattern: "/api/feedback", Requires: PermitAll},
		{Pattern: "/api/doctors/fetchAllDoctorNames", Requires: PermitAll},
		{Pattern: "/api/admin/**", Requires: HasAnyAuthority(RoleAuthority("ADMIN"))},
		{Pattern: "/api/doctor/**", Requires: HasAnyAuthority(RoleAuthority("DOCTOR"), RoleAuthority("ADMIN"))},
		{Pattern: "/api/nurse/**", Requires: HasAnyAuthority(RoleAuthority("NURSE"))},
		{Pattern: "/api/staff/**", Requires: HasAnyAuthority(RoleAuthority("STAFF"))},
		{Pattern: "/api/patients/**", Requires: HasAnyAuthority(RoleAuthority("PATIENT"), RoleAuthority("ADMIN"))},
		{Pattern: "/**", Requires: Authenticated},
	})
}

// Decide evaluates the table for a request. CORS preflight requests are
// always allowed regardless of path.
func (p *Policy) Decide(method, path string, principal *Principal) Decision {
	if method == http.MethodOptions {
		return DecisionAllow
	}
	for _, rule := range p.rules {
		if !matchPattern(rule.Pattern, path) {
			continue
		}
		if rule.Requires(principal) {
			return DecisionAllow
		}
		if principal == nil {
			return DecisionUnauthenticated
		}
		return DecisionForbidden
	}
	// No rule matched; treat as protected.
	if principal == nil {
		return DecisionUnauthenticated
	}
	return DecisionForbidden
}

// Enforce returns middleware that short-circuits denied requests before any
// business handler runs.
func (p *Policy) Enforce() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		switch p.Decide(c.Method(), c.Path(), principal) {
		case DecisionAllow:
			return c.Next()
		case DecisionUnauthenticated:
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Full authentication is required to access this resource",
			})
		default:
			return c.Status(http.StatusForbidden).SendString("Access Denied")
		}
	}
}

// matchPattern matches exact paths, or prefixes when the pattern ends in
// "/**". A bare "/**" matches everything.
func matchPattern(pattern, path string) bool {
	if base, ok := strings.CutSuffix(pattern, "/**"); ok {
		if base == "" {
			return true
		}
		return path == base || strings.HasPrefix(path, base+"/")
	}
	return path == pattern
}
