package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/config"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			ExpiryMinutes: 3,
		},
	}
}

func newProtectedApp(cfg *config.Config, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()

	handlers := []fiber.Handler{AuthMiddleware(cfg)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userID": c.Locals("userID"),
			"role":   c.Locals("role"),
		})
	})

	app.Get("/protegido", handlers...)
	return app
}

func validToken(t *testing.T, cfg *config.Config, role string) string {
	t.Helper()
	token, err := jwt.GenerateToken("user-1", "ana@example.com", role, cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)
	require.NoError(t, err)
	return token
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body["erro"]
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := newProtectedApp(newTestConfig())

	resp, err := app.Test(httptest.NewRequest("GET", "/protegido", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token não fornecido", errorBody(t, resp))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := newProtectedApp(newTestConfig())

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer lixo.lixo.lixo")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token inválido ou expirado", errorBody(t, resp))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	app := newProtectedApp(cfg)

	expired, err := jwt.GenerateToken("user-1", "ana@example.com", "editor", cfg.JWT.Secret, -1)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: expired})

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token inválido ou expirado", errorBody(t, resp))
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	cfg := newTestConfig()
	app := newProtectedApp(cfg)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: validToken(t, cfg, "editor")})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	cfg := newTestConfig()
	app := newProtectedApp(cfg)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t, cfg, "editor"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "user-1", body["userID"])
	assert.Equal(t, "editor", body["role"])
}

func TestAuthMiddleware_CookieWinsOverHeader(t *testing.T) {
	cfg := newTestConfig()
	app := newProtectedApp(cfg)

	// A bad cookie is rejected even when a valid header is present
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "lixo"})
	req.Header.Set("Authorization", "Bearer "+validToken(t, cfg, "editor"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminOnly(t *testing.T) {
	cfg := newTestConfig()
	app := newProtectedApp(cfg, AdminOnly())

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t, cfg, "editor"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Acesso negado", errorBody(t, resp))

	req = httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t, cfg, "admin"))

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleMiddleware_WithoutAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/", RoleMiddleware(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
