package cache

import (
	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// Session keys live outside the lendsqr_ cache namespace on purpose:
// InvalidateAll (force refresh) must never log the operator out.
const (
	keyAuthToken = "auth_token"
	keyAuthUser  = "auth_user"
)

// SessionStore persists the logged-in operator's session. Token and user
// are separate keys with no transaction across them; Save writes the token
// first and Session refuses to report a session unless both halves are
// present, so a partial write reads as "no session" rather than a corrupt
// one.
type SessionStore struct {
	store ports.KeyValueStore
}

// NewSessionStore builds a session store over store.
func NewSessionStore(store ports.KeyValueStore) *SessionStore {
	return &SessionStore{store: store}
}

// Save persists s.
func (s *SessionStore) Save(sess domain.Session) {
	s.store.Set(keyAuthToken, sess.Token)
	s.store.Set(keyAuthUser, sess.User)
}

// Session returns the persisted session, if both token and user are
// readable.
func (s *SessionStore) Session() (*domain.Session, bool) {
	var token string
	if !s.store.Get(keyAuthToken, &token) || token == "" {
		return nil, false
	}
	var user domain.AuthUser
	if !s.store.Get(keyAuthUser, &user) {
		return nil, false
	}
	return &domain.Session{User: user, Token: token}, true
}

// Token returns just the persisted bearer token.
func (s *SessionStore) Token() (string, bool) {
	var token string
	if !s.store.Get(keyAuthToken, &token) || token == "" {
		return "", false
	}
	return token, true
}

// Clear removes both halves of the session unconditionally.
func (s *SessionStore) Clear() {
	s.store.Remove(keyAuthToken)
	s.store.Remove(keyAuthUser)
}
