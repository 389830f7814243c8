package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progarden-crm/internal/application/auth"
	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	apphttp "github.com/jhoicas/progarden-crm/internal/interfaces/http"
)

type stubUsers struct {
	users []*entity.User
}

func (s *stubUsers) List(context.Context) ([]*entity.User, error) { return s.users, nil }

func (s *stubUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }
func (s *stubUsers) Update(context.Context, *entity.User) error { return nil }
func (s *stubUsers) Delete(context.Context, int64) error        { return nil }

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := usecase.HashPassword("garden-secret")
	require.NoError(t, err)
	users := &stubUsers{users: []*entity.User{
		{ID: 1, Username: "admin", PasswordHash: hash, IsAdmin: true, IsActive: true},
		{ID: 2, Username: "ops", PasswordHash: hash, IsActive: true},
	}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}, nil, nil),
		UserUC:    usecase.NewUserUseCase(users),
		JWTSecret: testJWTSecret,
	})
	app.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	return app
}

func login(t *testing.T, app *fiber.App, username, password string) (*http.Response, dto.TokenResponse) {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out dto.TokenResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_TokenAndMe(t *testing.T) {
	app := buildAPI(t)

	resp, tok := login(t, app, "ops", "garden-secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)

	me := get(t, app, "/me", tok.AccessToken)
	defer me.Body.Close()
	require.Equal(t, http.StatusOK, me.StatusCode)
	var user dto.UserResponse
	require.NoError(t, json.NewDecoder(me.Body).Decode(&user))
	assert.Equal(t, "ops", user.Username)
}

func TestRouter_WrongPassword(t *testing.T) {
	resp, _ := login(t, buildAPI(t), "ops", "nope-nope")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_UsersAreAdminOnly(t *testing.T) {
	app := buildAPI(t)
	_, staff := login(t, app, "ops", "garden-secret")
	_, admin := login(t, app, "admin", "garden-secret")

	resp := get(t, app, "/users/", staff.AccessToken)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = get(t, app, "/users/", admin.AccessToken)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)
}

func TestRouter_ProtectedWithoutToken(t *testing.T) {
	app := buildAPI(t)
	for _, path := range []string{"/me", "/customers/", "/dashboard/stats", "/invoices/1/pdf"} {
		resp := get(t, app, path, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp := get(t, app, "/health", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "public routes are not behind the auth middleware")
}
