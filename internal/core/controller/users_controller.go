package controller

import (
	"context"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/cache"
)

// UsersState is a snapshot of the user-list view-model.
type UsersState struct {
	Users      []domain.User
	Total      int
	Page       int
	Limit      int
	TotalPages int
	Loading    bool
	Err        string
}

// UsersController drives the paginated, filterable user list. Filters and
// pagination are persisted so the operator's view survives a restart.
// The list itself is always fetched fresh; a failed refresh keeps the
// previous rows on screen next to the error.
type UsersController struct {
	base
	users ports.UserService
	prefs *cache.UserCache

	state   UsersState
	filters ports.UserFilters
	page    ports.PageParams
}

// NewUsersController builds the controller, restoring any persisted
// filter and pagination preferences.
func NewUsersController(users ports.UserService, prefs *cache.UserCache) *UsersController {
	return &UsersController{
		users:   users,
		prefs:   prefs,
		filters: prefs.Filters(),
		page:    prefs.Pagination(),
	}
}

// State returns a snapshot of the list view.
func (c *UsersController) State() UsersState {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Loading = c.loading
	s.Err = c.errMsg
	s.Users = append([]domain.User(nil), c.state.Users...)
	return s
}

// Filters returns the active filter set.
func (c *UsersController) Filters() ports.UserFilters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Pagination returns the active pagination parameters.
func (c *UsersController) Pagination() ports.PageParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Fetch loads the page described by the current filters and pagination.
func (c *UsersController) Fetch(ctx context.Context) error {
	c.mu.Lock()
	seq := c.nextSeq()
	c.loading = true
	c.errMsg = ""
	filters, page := c.filters, c.page
	c.mu.Unlock()

	result, err := c.users.ListUsers(ctx, filters, page)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.latest(seq) {
		// A newer fetch owns the state now.
		return nil
	}
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	c.state = UsersState{
		Users:      result.Users,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
	return nil
}

// UpdateFilters replaces the filter set, snaps back to page 1, persists
// both preferences and refetches.
func (c *UsersController) UpdateFilters(ctx context.Context, filters ports.UserFilters) error {
	c.mu.Lock()
	c.filters = filters
	c.page.Page = ports.DefaultPage
	c.prefs.SaveFilters(filters)
	c.prefs.SavePagination(c.page)
	c.mu.Unlock()
	return c.Fetch(ctx)
}

// UpdatePagination merges the supplied parameters into the current ones
// (zero fields keep their value), persists and refetches.
func (c *UsersController) UpdatePagination(ctx context.Context, page ports.PageParams) error {
	c.mu.Lock()
	if page.Page > 0 {
		c.page.Page = page.Page
	}
	if page.Limit > 0 {
		c.page.Limit = page.Limit
	}
	if page.SortBy != "" {
		c.page.SortBy = page.SortBy
		c.page.SortOrder = page.SortOrder
	}
	c.prefs.SavePagination(c.page)
	c.mu.Unlock()
	return c.Fetch(ctx)
}
