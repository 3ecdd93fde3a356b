package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DependencyCheck pings one external dependency. A nil error means ready.
type DependencyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthHandler struct {
	checks []DependencyCheck
}

// NewHealthHandler builds the health endpoints. checks may be empty when
// the process has no external dependencies (the in-memory backend).
func NewHealthHandler(checks ...DependencyCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness reports whether every registered dependency answers. Any
// failing dependency turns the whole probe 503.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()
	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for _, dep := range h.checks {
		if err := dep.Check(ctx); err != nil {
			deps[dep.Name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[dep.Name] = "ok"
	}

	body := map[string]any{"status": "ok"}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}
	return c.JSON(status, body)
}
