package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/http/middleware"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/config"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/services"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/password"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"tipo"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Register handles staff user registration
// @Summary Register new user
// @Description Register a new staff user (admin only)
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Security BearerAuth
// @Router /auth/registrar [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Nome, email e senha são obrigatórios")
	}
	if !password.Validate(req.Password) {
		return response.BadRequest(c, "Senha deve ter no mínimo 8 caracteres")
	}

	if req.Role == "" {
		req.Role = string(domain.RoleEditor)
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return response.BadRequest(c, "Tipo de usuário inválido")
	}

	user, err := h.authService.Register(c.Context(), &services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailAlreadyExists):
			return response.Conflict(c, "Email já cadastrado")
		default:
			return response.InternalServerError(c, "Erro ao registrar usuário")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate a staff user and return a short-lived token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} services.AuthResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	pass := strings.TrimSpace(req.Password)

	if email == "" || pass == "" {
		return response.BadRequest(c, "Email e senha são obrigatórios")
	}

	result, err := h.authService.Login(c.Context(), email, pass)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Credenciais inválidas")
		case errors.Is(err, services.ErrUserInactive):
			return response.Forbidden(c, "Usuário inativo")
		default:
			return response.InternalServerError(c, "Erro ao realizar login")
		}
	}

	h.setAuthCookie(c, result.Token)

	return c.JSON(result)
}

// Logout clears the auth cookie
// @Summary Logout user
// @Description Clear the authentication cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookie(c)
	return c.JSON(fiber.Map{
		"mensagem": "Logout realizado com sucesso",
		"redirect": "/",
	})
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.ExpiryMinutes) * time.Minute),
	})
}

func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}
