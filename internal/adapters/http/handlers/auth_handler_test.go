package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/models"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/config"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/services"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryUserRepo is an in-memory UserRepository for handler tests
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*models.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryUserRepo) Update(_ context.Context, id string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["ativo"]; ok {
		u.IsActive = v.(bool)
	}
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newAuthTestApp(t *testing.T) (*fiber.App, *memoryUserRepo) {
	t.Helper()

	cfg := &config.Config{
		JWT:    config.JWTConfig{Secret: "test-secret", ExpiryMinutes: 3},
		Cookie: config.CookieConfig{SameSite: "Lax"},
	}

	repo := newMemoryUserRepo()
	handler := NewAuthHandler(services.NewAuthService(repo, cfg), cfg)

	app := fiber.New()
	app.Post("/api/auth/registrar", handler.Register)
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/logout", handler.Logout)

	return app, repo
}

func seedUser(t *testing.T, repo *memoryUserRepo, email, plain string, active bool) {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &models.User{
		Name:     "Ana",
		Email:    email,
		Password: hash,
		Role:     domain.RoleEditor,
		IsActive: active,
	}))
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body["erro"]
}

func TestRegisterEndpoint(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/registrar",
		`{"nome":"Ana","email":"Ana@Example.com","senha":"senha-forte"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var user models.UserResponse
	require.NoError(t, json.Unmarshal(raw, &user))

	// Email is normalized, role defaults to editor, password never leaves
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, domain.RoleEditor, user.Role)
	assert.NotContains(t, string(raw), "senha")
}

func TestRegisterEndpoint_Validation(t *testing.T) {
	app, _ := newAuthTestApp(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"nome":"Ana"}`, "Nome, email e senha são obrigatórios"},
		{"short password", `{"nome":"Ana","email":"a@b.com","senha":"curta"}`, "Senha deve ter no mínimo 8 caracteres"},
		{"bad role", `{"nome":"Ana","email":"a@b.com","senha":"senha-forte","tipo":"root"}`, "Tipo de usuário inválido"},
	}
	for _, tt := range tests {
		resp, err := app.Test(jsonRequest("POST", "/api/auth/registrar", tt.body), -1)
		require.NoError(t, err, tt.name)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, tt.name)
		assert.Equal(t, tt.want, decodeError(t, resp), tt.name)
	}
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	app, repo := newAuthTestApp(t)
	seedUser(t, repo, "ana@example.com", "senha-forte", true)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/registrar",
		`{"nome":"Ana","email":"ana@example.com","senha":"senha-forte"}`), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email já cadastrado", decodeError(t, resp))
}

func TestLoginEndpoint(t *testing.T) {
	app, repo := newAuthTestApp(t)
	seedUser(t, repo, "ana@example.com", "senha-forte", true)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login",
		`{"email":"ana@example.com","senha":"senha-forte"}`), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Token string               `json:"token"`
		User  *models.UserResponse `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "ana@example.com", body.User.Email)

	// The token also travels as an HTTP-only cookie
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, body.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	app, repo := newAuthTestApp(t)
	seedUser(t, repo, "ana@example.com", "senha-forte", true)

	// Unknown email and wrong password must be indistinguishable
	for _, body := range []string{
		`{"email":"ninguem@example.com","senha":"senha-forte"}`,
		`{"email":"ana@example.com","senha":"senha-errada"}`,
	} {
		resp, err := app.Test(jsonRequest("POST", "/api/auth/login", body), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Credenciais inválidas", decodeError(t, resp))
	}
}

func TestLoginEndpoint_InactiveUser(t *testing.T) {
	app, repo := newAuthTestApp(t)
	seedUser(t, repo, "ana@example.com", "senha-forte", false)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login",
		`{"email":"ana@example.com","senha":"senha-forte"}`), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Usuário inativo", decodeError(t, resp))
}

func TestLogoutEndpoint(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/logout", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}
