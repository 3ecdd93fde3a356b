// Package httpapi implements ports.Transport against a remote dashboard
// API over HTTP. It is the production counterpart of the in-memory
// transport: same contract, same error values, real network.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// TokenSource supplies the bearer token for authenticated calls that do
// not take one explicitly (list, get, mutate, stats, logout). Typically
// backed by the session store.
type TokenSource func() string

// Client talks to the dashboard API.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource sets the bearer-token supplier for session-bound calls.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// NewClient builds a Client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		token:   func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sessionPayload struct {
	Token string          `json:"token"`
	User  domain.AuthUser `json:"user"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	var payload sessionPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", bytes.NewReader(body), &payload); err != nil {
		return nil, err
	}
	return &domain.Session{User: payload.User, Token: payload.Token}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", c.token(), nil, nil)
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*domain.AuthUser, error) {
	var user domain.AuthUser
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) RefreshToken(ctx context.Context, token string) (*domain.Session, error) {
	var payload sessionPayload
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", token, nil, &payload); err != nil {
		return nil, err
	}
	return &domain.Session{User: payload.User, Token: payload.Token}, nil
}

func (c *Client) ListUsers(ctx context.Context, filters ports.UserFilters, page ports.PageParams) (*ports.UserPage, error) {
	q := url.Values{}
	setIf := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	setIf("organization", filters.Organization)
	setIf("username", filters.Username)
	setIf("email", filters.Email)
	setIf("phone_number", filters.PhoneNumber)
	setIf("status", filters.Status)
	setIf("date_joined", filters.DateJoined)
	if page.Page > 0 {
		q.Set("page", strconv.Itoa(page.Page))
	}
	if page.Limit > 0 {
		q.Set("limit", strconv.Itoa(page.Limit))
	}
	setIf("sort_by", page.SortBy)
	setIf("sort_order", page.SortOrder)

	path := "/users"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result ports.UserPage
	if err := c.do(ctx, http.MethodGet, path, c.token(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), c.token(), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	body, _ := json.Marshal(map[string]string{"status": string(status)})
	var user domain.User
	path := "/users/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, c.token(), bytes.NewReader(body), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserStats(ctx context.Context) (*domain.UserStats, error) {
	var stats domain.UserStats
	if err := c.do(ctx, http.MethodGet, "/users/stats", c.token(), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// do performs one request and decodes the response into out (when non-nil).
// Non-2xx responses map to the domain errors the in-memory transport
// returns for the same conditions, so callers cannot tell the transports
// apart by error value.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	var envelope errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if path == "/auth/login" {
			return domain.ErrInvalidCredentials
		}
		return domain.ErrNoSession
	case http.StatusNotFound:
		return domain.ErrUserNotFound
	case http.StatusUnprocessableEntity:
		return domain.ErrInvalidStatus
	}
	if envelope.Error != "" {
		return fmt.Errorf("api: %s (status %d)", envelope.Error, resp.StatusCode)
	}
	return fmt.Errorf("api: unexpected status %d", resp.StatusCode)
}
