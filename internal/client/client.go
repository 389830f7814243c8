// Package client is the dashboard's HTTP client for the ProGarden REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/pkg/config"
)

var (
	// ErrUnauthorized the API answered 401; the session has already been cleared.
	ErrUnauthorized = errors.New("client: unauthorized")
	// ErrTransport the request never produced an HTTP response.
	ErrTransport = errors.New("client: transport failure")
)

// Session holds the bearer token of the current operator.
type Session interface {
	Token() string
	Clear()
}

// APIError a non-2xx answer other than 401.
type APIError struct {
	Status  int
	Code    string
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api %d %s: %s (%s)", e.Status, e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

// IsValidation reports whether the backend rejected the payload itself.
func (e *APIError) IsValidation() bool {
	return e.Status == http.StatusBadRequest || e.Status == http.StatusConflict || e.Status == http.StatusUnprocessableEntity
}

// IsNotFound reports a 404.
func (e *APIError) IsNotFound() bool { return e.Status == http.StatusNotFound }

// Response raw answer returned by Do.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Client talks to the REST API. It is safe for concurrent use; WithSession
// returns a copy bound to one operator.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
}

// New builds an unauthenticated client.
func New(cfg config.APIClientConfig) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = config.DefaultAPIURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{baseURL: base, http: &http.Client{Timeout: timeout}}
}

// WithSession returns a copy of the client that authenticates with s.
func (c *Client) WithSession(s Session) *Client {
	cp := *c
	cp.session = s
	return &cp
}

// BaseURL returns the API root the client points at.
func (c *Client) BaseURL() string { return c.baseURL }

// Do sends body as JSON (when not nil) and returns the raw response.
// 401 clears the session and yields ErrUnauthorized; other non-2xx yield *APIError.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("client: encode %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("client: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

func (c *Client) send(req *http.Request) (*Response, error) {
	req.Header.Set("Accept", "application/json")
	if c.session != nil {
		if tok := c.session.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", ErrTransport, req.Method, req.URL.Path, err)
	}

	if res.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			c.session.Clear()
		}
		return nil, ErrUnauthorized
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, decodeError(res.StatusCode, data)
	}
	return &Response{Status: res.StatusCode, Header: res.Header, Body: data}, nil
}

func decodeError(status int, data []byte) error {
	apiErr := &APIError{Status: status}
	var body dto.ErrorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		apiErr.Field = body.Field
		return apiErr
	}
	apiErr.Code = strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	apiErr.Message = strings.TrimSpace(string(data))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	res, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(res.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return fmt.Errorf("client: decode %s %s: %w", method, path, err)
	}
	return nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("client: build login: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.send(req)
	if err != nil {
		return "", err
	}
	var tok dto.TokenResponse
	if err := json.Unmarshal(res.Body, &tok); err != nil {
		return "", fmt.Errorf("client: decode token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("client: empty access token")
	}
	return tok.AccessToken, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var u dto.UserResponse
	if err := c.getJSON(ctx, "/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
