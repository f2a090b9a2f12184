package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// Authenticator runs once per inbound request and establishes a Principal
// from the bearer token, if one is present and valid. It never rejects a
// request itself: a missing or broken token yields an unauthenticated
// context and the allow/deny decision falls to the Policy.
type Authenticator struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewAuthenticator constructs the request authenticator.
func NewAuthenticator(tokens *TokenManager, logger *zap.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, logger: logger}
}

// Handle is the per-request Fiber middleware.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	if _, ok := PrincipalFromContext(c); ok {
		return c.Next()
	}

	token := bearerToken(c.Get(fiber.HeaderAuthorization))
	a.logger.Debug("processing bearer token", zap.Bool("present", token != ""))
	if token == "" {
		return c.Next()
	}

	subject, roles, err := a.tokens.Validate(token)
	if err != nil {
		// Fail open: the request continues unauthenticated and the
		// policy rejects it on protected paths.
		ClearPrincipal(c)
		a.logger.Debug("token rejected", zap.Error(err))
		return c.Next()
	}

	authorities := make([]string, 0, len(roles))
	for _, role := range roles {
		authorities = append(authorities, Authority(role))
	}
	SetPrincipal(c, &Principal{Email: subject, Authorities: authorities})
	a.logger.Debug("authentication successful", zap.String("subject", subject))
	return c.Next()
}

// bearerToken strips the scheme prefix from an Authorization header value.
// Anything without a well-formed Bearer prefix counts as "no token".
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
