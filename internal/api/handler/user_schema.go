package handler

import (
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// listUsersQuery maps the list endpoint's query parameters. All filters
// are optional; empty means unconstrained.
type listUsersQuery struct {
	Organization string `query:"organization"`
	Username     string `query:"username"`
	Email        string `query:"email"`
	PhoneNumber  string `query:"phone_number"`
	Status       string `query:"status" validate:"omitempty,oneof=Active Inactive Pending Blacklisted"`
	DateJoined   string `query:"date_joined"`

	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=500"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

func (q listUsersQuery) filters() ports.UserFilters {
	return ports.UserFilters{
		Organization: q.Organization,
		Username:     q.Username,
		Email:        q.Email,
		PhoneNumber:  q.PhoneNumber,
		Status:       q.Status,
		DateJoined:   q.DateJoined,
	}
}

func (q listUsersQuery) pageParams() ports.PageParams {
	return ports.PageParams{
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
}

// updateStatusRequest is the body of the status mutation endpoint.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive Pending Blacklisted"`
}
