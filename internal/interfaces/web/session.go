package web

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/jhoicas/progarden-crm/internal/client"
	"github.com/jhoicas/progarden-crm/pkg/config"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

const (
	sessionCookie = "progarden_session"

	keyToken    = "token"
	keyUsername = "username"
	keyAdmin    = "is_admin"
	keyFlash    = "flash"
	keyFlashErr = "flash_error"

	localSession = "session"
	localAPI     = "api"
)

func newStore(cfg config.WebConfig) *session.Store {
	exp := cfg.SessionExpiry
	if exp <= 0 {
		exp = 24 * time.Hour
	}
	return session.New(session.Config{
		Expiration:     exp,
		KeyLookup:      "cookie:" + sessionCookie,
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
}

// tokenSession the dashboard session as seen by the API client. The Fiber
// session is saved once, after the handler ran, because Save hands it back
// to the pool.
type tokenSession struct {
	mu       sync.Mutex
	sess     *session.Session
	token    string
	username string
	admin    bool
	cleared  bool
	dirty    bool
	log      *logger.Logger
}

var (
	_ client.Session = (*tokenSession)(nil)
	_ client.Session = bearer("")
)

// bearer a token not yet stored in a session, used right after login.
type bearer string

func (b bearer) Token() string { return string(b) }
func (bearer) Clear()          {}

func (t *tokenSession) Token() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token
}

// Clear forgets the token for good: the API rejected it.
func (t *tokenSession) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cleared {
		return
	}
	t.token = ""
	t.cleared = true
	if err := t.sess.Destroy(); err != nil {
		t.log.Warn().Err(err).Msg("destroy session")
	}
}

func (t *tokenSession) flash(msg string, isErr bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cleared {
		return
	}
	key := keyFlash
	if isErr {
		key = keyFlashErr
	}
	t.sess.Set(key, msg)
	t.dirty = true
}

// popFlash returns and forgets the pending notice and error banner.
func (t *tokenSession) popFlash() (notice, failure string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	notice, _ = t.sess.Get(keyFlash).(string)
	failure, _ = t.sess.Get(keyFlashErr).(string)
	if notice != "" || failure != "" {
		t.sess.Delete(keyFlash)
		t.sess.Delete(keyFlashErr)
		t.dirty = true
	}
	return notice, failure
}

func (t *tokenSession) save() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cleared || !t.dirty {
		return nil
	}
	t.dirty = false
	return t.sess.Save()
}

// requireSession redirects to /login before any API call when the operator
// has no token, and otherwise binds an authenticated client to the request.
func (s *Server) requireSession(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	tok, _ := sess.Get(keyToken).(string)
	if tok == "" {
		return c.Redirect("/login")
	}
	user, _ := sess.Get(keyUsername).(string)
	admin, _ := sess.Get(keyAdmin).(bool)

	cancel := s.bindDeadline(c)
	defer cancel()

	ts := &tokenSession{sess: sess, token: tok, username: user, admin: admin, log: s.log}
	c.Locals(localSession, ts)
	c.Locals(localAPI, s.api.WithSession(ts))

	herr := c.Next()
	if err := ts.save(); err != nil {
		s.log.Error().Err(err).Msg("save session")
	}
	return herr
}

// bindDeadline replaces the request's user context with one that ends after
// fetchTimeout or when the handler returns. Every API call of the request runs
// under c.UserContext(), so nothing outlives the page it was fetched for.
func (s *Server) bindDeadline(c *fiber.Ctx) context.CancelFunc {
	ctx, cancel := context.WithTimeout(c.UserContext(), s.fetchTimeout)
	c.SetUserContext(ctx)
	return cancel
}

func sessionOf(c *fiber.Ctx) *tokenSession {
	ts, _ := c.Locals(localSession).(*tokenSession)
	return ts
}

func apiOf(c *fiber.Ctx) *client.Client {
	api, _ := c.Locals(localAPI).(*client.Client)
	return api
}

// LoginPage GET /login
func (s *Server) LoginPage(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	if tok, _ := sess.Get(keyToken).(string); tok != "" {
		return c.Redirect("/dashboard")
	}
	return s.renderLogin(c, fiber.StatusOK, loginData{})
}

// Login POST /login
func (s *Server) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return s.renderLogin(c, fiber.StatusBadRequest, loginData{Username: username, Error: "Enter your username and password."})
	}

	cancel := s.bindDeadline(c)
	defer cancel()

	tok, err := s.api.Login(c.UserContext(), username, password)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("dashboard login failed")
		return s.renderLogin(c, fiber.StatusUnauthorized, loginData{Username: username, Error: loginMessage(err)})
	}

	// The admin flag only decides which screens are offered; the API enforces it.
	admin := false
	if me, err := s.api.WithSession(bearer(tok)).Me(c.UserContext()); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("load current user")
	} else {
		admin = me.IsAdmin
	}

	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(keyToken, tok)
	sess.Set(keyUsername, username)
	sess.Set(keyAdmin, admin)
	if err := sess.Save(); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("dashboard login")
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func loginMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Incorrect username or password."
	case errors.As(err, &apiErr) && apiErr.Status == fiber.StatusForbidden:
		return "This account is inactive."
	default:
		return "Could not reach the server. Try again."
	}
}

// Logout GET|POST /logout
func (s *Server) Logout(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Destroy(); err != nil {
		return err
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
