package middleware

import (
	"strings"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/config"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/jwt"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TokenCookieName is the cookie carrying the access token
const TokenCookieName = "token"

// extractToken tries each credential location in fixed precedence order:
// cookie first, then Authorization bearer header. First hit wins.
func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies(TokenCookieName); token != "" {
		return token
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// AuthMiddleware creates authentication middleware. On success the verified
// identity is attached to the request context for downstream handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return response.Unauthorized(c, "Token não fornecido")
		}

		claims, err := jwt.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			return response.Unauthorized(c, "Token inválido ou expirado")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware, composable
// after AuthMiddleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Token não fornecido")
		}

		for _, allowed := range allowedRoles {
			if domain.Role(role) == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Acesso negado")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}
