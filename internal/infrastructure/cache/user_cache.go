// Package cache layers timestamped, max-age-bounded entries for borrower
// records on top of a ports.KeyValueStore, plus persisted view preferences
// (filters, pagination, last-viewed user). Entries older than their max age
// read as absent, never as values.
package cache

import (
	"time"

	"github.com/lendsqr/admin-dashboard/internal/api/metrics"
	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// Storage keys. Everything lives under the lendsqr_ namespace so
// InvalidateAll can sweep by prefix without touching foreign keys.
const (
	keyPrefix         = "lendsqr_"
	keyUserPrefix     = keyPrefix + "user_"
	keyUserList       = keyPrefix + "users"
	keyUserFilters    = keyPrefix + "user_filters"
	keyUserPagination = keyPrefix + "user_pagination"
	keyLastViewed     = keyPrefix + "last_viewed_user"
)

// Default max ages. The list refreshes often because it is a volatile
// aggregate; a just-viewed detail record stays instantly available for the
// length of a typical navigation session.
const (
	DefaultListMaxAge = 5 * time.Minute
	DefaultUserMaxAge = 10 * time.Minute
)

type userEntry struct {
	User      domain.User `json:"user"`
	Timestamp int64       `json:"timestamp"` // unix milliseconds
}

type listEntry struct {
	Users     []domain.User `json:"users"`
	Timestamp int64         `json:"timestamp"`
}

// UserCache is the entity cache for borrower records. It holds one cached
// list at a time (caching a new list replaces the old one) and any number
// of per-user entries. Expiry is purely time-based; there is no size bound.
type UserCache struct {
	store ports.KeyValueStore
	now   func() time.Time
}

// NewUserCache builds a cache over store.
func NewUserCache(store ports.KeyValueStore) *UserCache {
	return &UserCache{store: store, now: time.Now}
}

// WithClock replaces the cache's clock. For expiry tests.
func (c *UserCache) WithClock(now func() time.Time) *UserCache {
	c.now = now
	return c
}

// CacheUser stores u under its per-id key, stamped with the current time.
func (c *UserCache) CacheUser(u domain.User) {
	c.store.Set(keyUserPrefix+u.ID, userEntry{User: u, Timestamp: c.now().UnixMilli()})
}

// User returns the cached record for id if one exists and is younger than
// maxAge. A stale entry is deleted as a side effect and reported as a miss.
func (c *UserCache) User(id string, maxAge time.Duration) (*domain.User, bool) {
	key := keyUserPrefix + id
	var entry userEntry
	if !c.store.Get(key, &entry) {
		metrics.CacheLookupsTotal.WithLabelValues("user", "miss").Inc()
		return nil, false
	}
	if c.expired(entry.Timestamp, maxAge) {
		c.store.Remove(key)
		metrics.CacheLookupsTotal.WithLabelValues("user", "expired").Inc()
		return nil, false
	}
	metrics.CacheLookupsTotal.WithLabelValues("user", "hit").Inc()
	return &entry.User, true
}

// CacheList stores users as the current cached list, replacing any
// previous one.
func (c *UserCache) CacheList(users []domain.User) {
	c.store.Set(keyUserList, listEntry{Users: users, Timestamp: c.now().UnixMilli()})
}

// List returns the cached list if it is younger than maxAge, deleting a
// stale entry as a side effect.
func (c *UserCache) List(maxAge time.Duration) ([]domain.User, bool) {
	var entry listEntry
	if !c.store.Get(keyUserList, &entry) {
		metrics.CacheLookupsTotal.WithLabelValues("list", "miss").Inc()
		return nil, false
	}
	if c.expired(entry.Timestamp, maxAge) {
		c.store.Remove(keyUserList)
		metrics.CacheLookupsTotal.WithLabelValues("list", "expired").Inc()
		return nil, false
	}
	metrics.CacheLookupsTotal.WithLabelValues("list", "hit").Inc()
	return entry.Users, true
}

// InvalidateList drops the cached list immediately, regardless of age.
func (c *UserCache) InvalidateList() {
	c.store.Remove(keyUserList)
}

// SaveFilters persists the operator's list filters across sessions.
func (c *UserCache) SaveFilters(f ports.UserFilters) {
	c.store.Set(keyUserFilters, f)
}

// Filters returns the persisted filters, or the zero value when none are
// stored.
func (c *UserCache) Filters() ports.UserFilters {
	var f ports.UserFilters
	c.store.Get(keyUserFilters, &f)
	return f
}

// SavePagination persists the operator's pagination preference.
func (c *UserCache) SavePagination(p ports.PageParams) {
	c.store.Set(keyUserPagination, p)
}

// Pagination returns the persisted pagination preference, defaulting to
// page 1 with the dashboard page size.
func (c *UserCache) Pagination() ports.PageParams {
	p := ports.PageParams{Page: ports.DefaultPage, Limit: ports.DefaultUILimit}
	c.store.Get(keyUserPagination, &p)
	return p
}

// SaveLastViewed records the most recently opened user detail.
func (c *UserCache) SaveLastViewed(id string) {
	c.store.Set(keyLastViewed, id)
}

// LastViewed returns the id of the most recently opened user detail.
func (c *UserCache) LastViewed() (string, bool) {
	var id string
	if !c.store.Get(keyLastViewed, &id) || id == "" {
		return "", false
	}
	return id, true
}

// InvalidateAll removes every key in the cache namespace: the list, all
// per-user entries, preferences and the last-viewed marker. Used on logout
// and explicit force-refresh.
func (c *UserCache) InvalidateAll() {
	for _, key := range c.store.Keys(keyPrefix) {
		c.store.Remove(key)
	}
}

func (c *UserCache) expired(stampMilli int64, maxAge time.Duration) bool {
	return c.now().UnixMilli()-stampMilli > maxAge.Milliseconds()
}
