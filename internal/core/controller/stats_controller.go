package controller

import (
	"context"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// StatsState is a snapshot of the dashboard-cards view-model.
type StatsState struct {
	Stats   *domain.UserStats
	Loading bool
	Err     string
}

// StatsController fetches the aggregate counts for the dashboard cards.
// Stats are fetched on demand and refreshed only when asked; a failed
// refresh keeps the previous numbers visible.
type StatsController struct {
	base
	users ports.UserService

	stats *domain.UserStats
}

func NewStatsController(users ports.UserService) *StatsController {
	return &StatsController{users: users}
}

// State returns a snapshot of the stats view.
func (c *StatsController) State() StatsState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return StatsState{Stats: c.stats, Loading: c.loading, Err: c.errMsg}
}

// Fetch loads the current aggregates.
func (c *StatsController) Fetch(ctx context.Context) error {
	c.mu.Lock()
	seq := c.nextSeq()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	stats, err := c.users.UserStats(ctx)

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
	c.stats = stats
	return nil
}
