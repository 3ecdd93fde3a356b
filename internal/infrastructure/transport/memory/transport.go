// Package memory implements the data transport against the in-process
// repositories, standing in for a real API. It adds artificial latency so
// everything above it exercises genuine loading states, and signs real
// JWTs so the auth contract matches what a production backend would issue.
package memory

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"github.com/lendsqr/admin-dashboard/internal/api/metrics"
	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

const (
	// DefaultReadDelay approximates a round trip for reads and mutations.
	DefaultReadDelay = 500 * time.Millisecond
	// DefaultLogoutDelay is shorter: logout is fire-and-forget.
	DefaultLogoutDelay = 200 * time.Millisecond

	defaultTokenTTL = 24 * time.Hour
)

// Options configures the simulated transport.
type Options struct {
	// ReadDelay and LogoutDelay simulate network latency. Zero means no
	// delay (use in tests); negative also means no delay.
	ReadDelay   time.Duration
	LogoutDelay time.Duration
	JWTSecret   string
	TokenTTL    time.Duration
}

// Transport implements ports.Transport over injected repositories.
type Transport struct {
	repo  ports.UserRepository
	creds ports.CredentialRepository
	audit ports.AuditEnqueuer // optional

	jwtSecret   string
	tokenTTL    time.Duration
	readDelay   time.Duration
	logoutDelay time.Duration
}

// New builds a simulated transport. audit may be nil when no trail is
// wanted (most tests).
func New(repo ports.UserRepository, creds ports.CredentialRepository, audit ports.AuditEnqueuer, opts Options) *Transport {
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Transport{
		repo:        repo,
		creds:       creds,
		audit:       audit,
		jwtSecret:   opts.JWTSecret,
		tokenTTL:    ttl,
		readDelay:   opts.ReadDelay,
		logoutDelay: opts.LogoutDelay,
	}
}

// Login verifies the credential pair and returns a session with a signed
// token. Unknown email and wrong password are indistinguishable.
func (t *Transport) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	defer track("login")()
	if err := t.delay(ctx, t.readDelay); err != nil {
		return nil, err
	}

	cred, err := t.creds.FindByEmail(ctx, email)
	if err != nil {
		// A missing account reads as invalid credentials; anything else is
		// an infrastructure failure and must not look like operator error.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := t.signToken(cred.User)
	if err != nil {
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &domain.Session{User: cred.User, Token: token}, nil
}

// Logout tears down the session server-side. The simulated backend has
// nothing to invalidate, so this only spends the latency.
func (t *Transport) Logout(ctx context.Context) error {
	defer track("logout")()
	return t.delay(ctx, t.logoutDelay)
}

// CurrentUser returns the principal embedded in token.
func (t *Transport) CurrentUser(ctx context.Context, token string) (*domain.AuthUser, error) {
	defer track("current_user")()
	if err := t.delay(ctx, t.readDelay); err != nil {
		return nil, err
	}
	return t.parseToken(token)
}

// RefreshToken reissues a session for the principal in token.
func (t *Transport) RefreshToken(ctx context.Context, token string) (*domain.Session, error) {
	defer track("refresh_token")()
	if err := t.delay(ctx, t.readDelay); err != nil {
		return nil, err
	}

	user, err := t.parseToken(token)
	if err != nil {
		return nil, err
	}
	fresh, err := t.signToken(*user)
	if err != nil {
		return nil, err
	}
	return &domain.Session{User: *user, Token: fresh}, nil
}

// ListUsers returns one page of the filtered dataset.
func (t *Transport) ListUsers(ctx context.Context, filters ports.UserFilters, page ports.PageParams) (*ports.UserPage, error) {
	defer track("list_users")()
	if err := t.delay(ctx, t.readDelay); err != nil {
		return nil, err
	}

	page = page.Normalized()
	users, total, err := t.repo.List(ctx, filters, page)
	if err != nil {
		return nil, err
	}
	return &ports.UserPage{
		Users:      users,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: ports.PageCount(total, page.Limit),
	}, nil
}

// GetUserByID returns the full record for id.
func (t *Transport) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	defer track("get_user")()
	if err := t.delay(ctx, t.readDelay); err != nil {
		return nil, err
	}
	return t.repo.FindByID(ctx, id)
}

// UpdateUserStatus applies the mutation to the shared dataset and returns
// the confirmed record. Successful changes are queued for the audit trail.
func (t *Transport) UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	defer track("update_status")()
	if err := t.delay(ctx, t.readDelay); err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	prev, err := t.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := t.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	if t.audit != nil {
		t.audit.Enqueue(domain.StatusChange{
			UserID:     id,
			From:       prev.Status,
			To:         updated.Status,
			OccurredAt: time.Now().UTC(),
		})
	}
	return updated, nil
}

// GetUserStats returns the dataset aggregates.
func (t *Transport) GetUserStats(ctx context.Context) (*domain.UserStats, error) {
	defer track("get_stats")()
	if err := t.delay(ctx, t.readDelay); err != nil {
		return nil, err
	}
	return t.repo.Stats(ctx)
}

// delay blocks for d or until ctx is done, whichever comes first.
func (t *Transport) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Transport) signToken(user domain.AuthUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":        user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"role":       user.Role,
		"exp":        time.Now().Add(t.tokenTTL).Unix(),
	}
	if user.Avatar != "" {
		claims["avatar"] = user.Avatar
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.jwtSecret))
}

// parseToken validates token and reconstructs the principal from its
// claims. Any parse or validation failure reads as "no session".
func (t *Transport) parseToken(token string) (*domain.AuthUser, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(t.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrNoSession
	}

	str := func(key string) string {
		s, _ := claims[key].(string)
		return s
	}
	return &domain.AuthUser{
		ID:        str("sub"),
		Email:     str("email"),
		FirstName: str("first_name"),
		LastName:  str("last_name"),
		Role:      str("role"),
		Avatar:    str("avatar"),
	}, nil
}

// track observes the duration of one transport call.
func track(operation string) func() {
	timer := prometheus.NewTimer(metrics.TransportRequestDuration.WithLabelValues(operation))
	return func() { timer.ObserveDuration() }
}
