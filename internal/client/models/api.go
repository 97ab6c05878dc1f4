package models

import (
	"net/url"
	"strconv"
)

// Envelope wraps every non-paginated API response. A 200 without Data is a
// logical failure.
type Envelope[T any] struct {
	Success bool                `json:"success"`
	Data    *T                  `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// OK reports whether the envelope carries a usable payload.
func (e Envelope[T]) OK() bool {
	return e.Success && e.Data != nil
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PaginatedEnvelope wraps list endpoints.
type PaginatedEnvelope[T any] struct {
	Success    bool       `json:"success"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Message    string     `json:"message,omitempty"`
}

// Page is one page of results handed to callers.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ListParams are the query parameters accepted by list endpoints.
type ListParams struct {
	Page          int
	Limit         int
	Search        string
	SortBy        string
	SortDirection SortDirection
	UserID        string
	RoleID        string
}

// Values encodes the non-zero parameters.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.SortBy != "" {
		v.Set("sortBy", p.SortBy)
	}
	if p.SortDirection != "" {
		v.Set("sortDirection", string(p.SortDirection))
	}
	if p.UserID != "" {
		v.Set("userId", p.UserID)
	}
	if p.RoleID != "" {
		v.Set("roleId", p.RoleID)
	}
	return v
}
