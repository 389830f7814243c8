package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/pkg/jwt"
)

const testSecret = "auth-test-secret"

type stubUsers struct {
	byName map[string]*entity.User
}

func (s *stubUsers) List(context.Context) ([]*entity.User, error) { return nil, nil }

func (s *stubUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range s.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }
func (s *stubUsers) Update(context.Context, *entity.User) error { return nil }
func (s *stubUsers) Delete(context.Context, int64) error        { return nil }

func (s *stubUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return s.byName[username], nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	sent  []string
	done  chan struct{}
	calls int
}

func (r *recordingNotifier) NotifyLogin(_ context.Context, email, _ string, _ time.Time) error {
	r.mu.Lock()
	r.sent = append(r.sent, email)
	r.calls++
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func newUsers(t *testing.T) *stubUsers {
	t.Helper()
	hash, err := usecase.HashPassword("garden-secret")
	require.NoError(t, err)
	email := "admin@progarden.ng"
	return &stubUsers{byName: map[string]*entity.User{
		"admin":  {ID: 1, Username: "admin", Email: &email, PasswordHash: hash, IsAdmin: true, IsActive: true},
		"ops":    {ID: 2, Username: "ops", PasswordHash: hash, IsActive: true},
		"former": {ID: 3, Username: "former", PasswordHash: hash, IsActive: false},
	}}
}

func TestLogin_IssuesBearerTokenAndNotifies(t *testing.T) {
	n := &recordingNotifier{done: make(chan struct{}, 1)}
	uc := NewAuthUseCase(newUsers(t), JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}, n, nil)

	out, err := uc.Login(context.Background(), dto.TokenRequest{Username: "admin", Password: "garden-secret"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	id, err := jwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.UserID)
	assert.True(t, id.IsAdmin)

	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("login notification was not sent")
	}
	assert.Equal(t, []string{"admin@progarden.ng"}, n.sent)
}

func TestLogin_Failures(t *testing.T) {
	n := &recordingNotifier{done: make(chan struct{}, 1)}
	uc := NewAuthUseCase(newUsers(t), JWTConfig{Secret: testSecret, ExpMinutes: 60}, n, nil)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.TokenRequest{Username: "admin", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.TokenRequest{Username: "ghost", Password: "garden-secret"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.TokenRequest{Username: "former", Password: "garden-secret"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)

	// no email, no notification
	_, err = uc.Login(ctx, dto.TokenRequest{Username: "ops", Password: "garden-secret"})
	require.NoError(t, err)
	assert.Zero(t, n.calls)
}

func TestMe(t *testing.T) {
	uc := NewAuthUseCase(newUsers(t), JWTConfig{Secret: testSecret}, nil, nil)

	me, err := uc.Me(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "ops", me.Username)

	_, err = uc.Me(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
