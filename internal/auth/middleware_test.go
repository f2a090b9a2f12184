package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-service/internal/domain"
)

func newAuthApp(t *testing.T, tm *TokenManager) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(NewAuthenticator(tm, zap.NewNop()).Handle)
	app.Get("/whoami", func(c *fiber.Ctx) error {
		p, ok := PrincipalFromContext(c)
		if !ok {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"email": p.Email, "authorities": p.Authorities})
	})
	return app
}

func TestAuthenticatorMissingHeaderIsAnonymous(t *testing.T) {
	app := newAuthApp(t, newTestTokenManager(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "anonymous")
}

func TestAuthenticatorGarbageTokenFailsOpen(t *testing.T) {
	app := newAuthApp(t, newTestTokenManager(t))

	for _, header := range []string{
		"Bearer not-a-token",
		"Bearer ",
		"Basic dXNlcjpwYXNz",
		"bearer lowercase-scheme",
	} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "header %q", header)
		assert.Contains(t, readBody(t, resp), "anonymous", "header %q", header)
	}
}

func TestAuthenticatorValidTokenEstablishesPrincipal(t *testing.T) {
	tm := newTestTokenManager(t)
	app := newAuthApp(t, tm)

	token, _, err := tm.Issue("nurse@h.com", domain.RoleNurse)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "nurse@h.com")
	assert.Contains(t, body, "ROLE_NURSE")
}

func TestAuthenticatorExpiredTokenIsAnonymousNotError(t *testing.T) {
	tm := newTestTokenManager(t)
	app := newAuthApp(t, tm)

	expired := issueExpired(t, tm, "doc@h.com", domain.RoleDoctor)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "anonymous")
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearerabc"))
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("Bearer  abc"))
}
