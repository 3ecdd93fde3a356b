package controller

import (
	"context"
	"testing"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/cache"
)

func TestAuthController_HydratesFromStore(t *testing.T) {
	store := newMemoryStore()
	sessions := cache.NewSessionStore(store)
	sessions.Save(domain.Session{
		User:  domain.AuthUser{ID: "op-1", Email: "admin@lendsqr.com"},
		Token: "persisted-token",
	})

	c := NewAuthController(&stubAuthService{}, sessions, nil, nopLogger)

	if !c.IsAuthenticated() {
		t.Fatal("controller must resume the persisted session")
	}
	if c.Token() != "persisted-token" {
		t.Errorf("expected persisted token, got %q", c.Token())
	}
}

func TestAuthController_StartsLoggedOutWithEmptyStore(t *testing.T) {
	c := NewAuthController(&stubAuthService{}, cache.NewSessionStore(newMemoryStore()), nil, nopLogger)
	if c.IsAuthenticated() {
		t.Fatal("no persisted session, must start logged out")
	}
}

func TestAuthController_LoginPersistsSession(t *testing.T) {
	store := newMemoryStore()
	sessions := cache.NewSessionStore(store)
	c := NewAuthController(&stubAuthService{}, sessions, nil, nopLogger)

	if err := c.Login(context.Background(), "admin@lendsqr.com", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !c.IsAuthenticated() {
		t.Fatal("expected authenticated state after login")
	}

	// A second controller over the same store resumes the session.
	again := NewAuthController(&stubAuthService{}, sessions, nil, nopLogger)
	if !again.IsAuthenticated() {
		t.Error("session must survive controller re-instantiation")
	}
}

func TestAuthController_LoginFailureSetsError(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	c := NewAuthController(svc, cache.NewSessionStore(newMemoryStore()), nil, nopLogger)

	if err := c.Login(context.Background(), "admin@lendsqr.com", "nope"); err == nil {
		t.Fatal("expected login error")
	}
	state := c.State()
	if state.Authenticated() {
		t.Error("failed login must not authenticate")
	}
	if state.Err == "" {
		t.Error("expected error captured in state")
	}
}

func TestAuthController_LogoutClearsEvenWhenServiceFails(t *testing.T) {
	store := newMemoryStore()
	sessions := cache.NewSessionStore(store)
	userData := cache.NewUserCache(store)
	userData.CacheUser(domain.User{ID: "1"})

	svc := &stubAuthService{logoutErr: errBackendDown}
	c := NewAuthController(svc, sessions, userData, nopLogger)
	if err := c.Login(context.Background(), "admin@lendsqr.com", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	c.Logout(context.Background())

	if c.IsAuthenticated() {
		t.Error("logout must end the session even when the remote call fails")
	}
	if _, ok := sessions.Session(); ok {
		t.Error("persisted session must be cleared")
	}
	if _, ok := userData.User("1", cache.DefaultUserMaxAge); ok {
		t.Error("cached borrower data must be swept on logout")
	}
	if svc.logouts != 1 {
		t.Errorf("remote logout must still be attempted, calls: %d", svc.logouts)
	}
}

func TestAuthController_RefreshFailureKeepsSession(t *testing.T) {
	sessions := cache.NewSessionStore(newMemoryStore())
	svc := &stubAuthService{refreshErr: errBackendDown}
	c := NewAuthController(svc, sessions, nil, nopLogger)
	if err := c.Login(context.Background(), "admin@lendsqr.com", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if !c.IsAuthenticated() {
		t.Error("a failed refresh must not log the operator out")
	}
	if c.Token() != "tok-1" {
		t.Errorf("expected original token kept, got %q", c.Token())
	}
}

func TestAuthController_RefreshRotatesToken(t *testing.T) {
	sessions := cache.NewSessionStore(newMemoryStore())
	c := NewAuthController(&stubAuthService{}, sessions, nil, nopLogger)
	if err := c.Login(context.Background(), "admin@lendsqr.com", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if c.Token() != "tok-1-r" {
		t.Errorf("expected rotated token, got %q", c.Token())
	}
	if sess, ok := sessions.Session(); !ok || sess.Token != "tok-1-r" {
		t.Error("rotated token must be persisted")
	}
}
