package controller

import (
	"context"
	"time"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/cache"
)

// UserState is a snapshot of the user-detail view-model.
type UserState struct {
	User    *domain.User
	Loading bool
	Err     string
}

// UserController drives the user-detail view. Fetch is cache-first;
// mutations replace the local record with the backend's confirmed one,
// write it through to the entity cache and invalidate the cached list,
// which would otherwise keep showing the old status for up to its max age.
type UserController struct {
	base
	users  ports.UserService
	cache  *cache.UserCache
	maxAge time.Duration

	user *domain.User
}

// NewUserController builds the controller. maxAge <= 0 selects the
// default detail-record max age.
func NewUserController(users ports.UserService, userCache *cache.UserCache, maxAge time.Duration) *UserController {
	if maxAge <= 0 {
		maxAge = cache.DefaultUserMaxAge
	}
	return &UserController{users: users, cache: userCache, maxAge: maxAge}
}

// State returns a snapshot of the detail view.
func (c *UserController) State() UserState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return UserState{User: c.user, Loading: c.loading, Err: c.errMsg}
}

// Fetch loads the record for id, serving from the entity cache when a
// fresh enough copy exists. Either way the id is recorded as last viewed.
func (c *UserController) Fetch(ctx context.Context, id string) error {
	if cached, ok := c.cache.User(id, c.maxAge); ok {
		c.mu.Lock()
		c.nextSeq() // supersede any in-flight fetch
		c.user = cached
		c.loading = false
		c.errMsg = ""
		c.mu.Unlock()
		c.cache.SaveLastViewed(id)
		return nil
	}

	c.mu.Lock()
	seq := c.nextSeq()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	user, err := c.users.GetUser(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.latest(seq) {
		return nil
	}
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	c.user = user
	c.cache.CacheUser(*user)
	c.cache.SaveLastViewed(id)
	return nil
}

// UpdateStatus moves the user to status and reconciles every local copy
// with the confirmed record.
func (c *UserController) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error {
	c.mu.Lock()
	c.nextSeq() // supersede any in-flight fetch; its snapshot predates the mutation
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	user, err := c.users.UpdateUserStatus(ctx, id, status)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	c.user = user
	c.cache.CacheUser(*user)
	c.cache.InvalidateList()
	return nil
}

// Blacklist moves the user to Blacklisted.
func (c *UserController) Blacklist(ctx context.Context, id string) error {
	return c.UpdateStatus(ctx, id, domain.StatusBlacklisted)
}

// Activate moves the user to Active.
func (c *UserController) Activate(ctx context.Context, id string) error {
	return c.UpdateStatus(ctx, id, domain.StatusActive)
}

// LastViewed returns the id of the most recently opened detail view.
func (c *UserController) LastViewed() (string, bool) {
	return c.cache.LastViewed()
}
