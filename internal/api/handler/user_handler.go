package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns one page of the filtered user listing.
func (h *UserHandler) List(c echo.Context) error {
	var q listUsersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := h.userService.ListUsers(c.Request().Context(), q.filters(), q.pageParams())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get returns the full record for one user.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateStatus moves a user to the status named in the body.
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateUserStatus(c.Request().Context(), c.Param("id"), domain.UserStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Blacklist moves a user to Blacklisted.
func (h *UserHandler) Blacklist(c echo.Context) error {
	user, err := h.userService.BlacklistUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Activate moves a user to Active.
func (h *UserHandler) Activate(c echo.Context) error {
	user, err := h.userService.ActivateUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Stats returns the aggregate counts for the dashboard cards.
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.userService.UserStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Events returns the recorded status changes for a user, oldest first.
func (h *UserHandler) Events(c echo.Context) error {
	events, err := h.userService.UserEvents(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.StatusChange{}
	}
	return c.JSON(http.StatusOK, events)
}
