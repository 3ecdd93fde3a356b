// Package controller holds the view-model layer: mutex-guarded state
// machines that front the services for whatever renders the dashboard.
// Controllers expose snapshot State() values; callers never observe a
// half-updated view. Fetches carry a sequence number so a slow response
// that has been superseded is discarded instead of clobbering newer state.
package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/cache"
)

// AuthState is a snapshot of the authentication view-model.
type AuthState struct {
	Session *domain.Session
	Loading bool
	Err     string
}

// Authenticated reports whether a session is present.
func (s AuthState) Authenticated() bool { return s.Session != nil }

// AuthController owns the operator's session. On construction it hydrates
// from the session store without touching the network, so a restarted
// dashboard resumes logged in.
type AuthController struct {
	base
	auth     ports.AuthService
	sessions *cache.SessionStore
	userData *cache.UserCache // optional, swept on logout
	logger   zerolog.Logger

	session *domain.Session
}

func NewAuthController(auth ports.AuthService, sessions *cache.SessionStore, userData *cache.UserCache, logger zerolog.Logger) *AuthController {
	c := &AuthController{
		auth:     auth,
		sessions: sessions,
		userData: userData,
		logger:   logger,
	}
	if sess, ok := sessions.Session(); ok {
		c.session = sess
	}
	return c
}

// State returns a snapshot of the current auth state.
func (c *AuthController) State() AuthState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return AuthState{Session: c.session, Loading: c.loading, Err: c.errMsg}
}

// IsAuthenticated reports whether an operator is logged in.
func (c *AuthController) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// Token returns the current bearer token, or "" when logged out.
func (c *AuthController) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.Token
}

// Login authenticates and, on success, persists the session so it
// survives a restart.
func (c *AuthController) Login(ctx context.Context, email, password string) error {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	sess, err := c.auth.Login(ctx, email, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	c.session = sess
	c.sessions.Save(*sess)
	return nil
}

// Logout ends the session. The service call is best-effort: whatever it
// returns, the local session and the cached borrower data are cleared and
// the controller ends unauthenticated.
func (c *AuthController) Logout(ctx context.Context) {
	if err := c.auth.Logout(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("remote logout failed, clearing local session anyway")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
	c.errMsg = ""
	c.sessions.Clear()
	if c.userData != nil {
		c.userData.InvalidateAll()
	}
}

// Refresh exchanges the current token for a fresh session. A failed
// refresh leaves the existing session in place.
func (c *AuthController) Refresh(ctx context.Context) error {
	token := c.Token()
	if token == "" {
		return domain.ErrNoSession
	}

	sess, err := c.auth.Refresh(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	c.session = sess
	c.errMsg = ""
	c.sessions.Save(*sess)
	return nil
}
