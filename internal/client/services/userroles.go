package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/arkania/internal/client/client"
	"github.com/dmitrijs2005/arkania/internal/client/models"
)

const userRolesBase = "/user-roles"

// UserRoleService manages role assignments.
type UserRoleService struct {
	client client.Client
}

func NewUserRoleService(c client.Client) *UserRoleService {
	return &UserRoleService{client: c}
}

// List pages through assignments; UserID and RoleID in p filter them.
func (s *UserRoleService) List(ctx context.Context, p models.ListParams) (*models.Page[models.UserRole], error) {
	return client.List[models.UserRole](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   userRolesBase,
		Query:  p.Values(),
	})
}

func (s *UserRoleService) Assign(ctx context.Context, dto models.CreateUserRoleDTO) (*models.UserRole, error) {
	if err := models.Validate(dto); err != nil {
		return nil, err
	}
	return client.Call[models.UserRole](ctx, s.client, client.Request{
		Method: http.MethodPost,
		Path:   userRolesBase,
		Body:   dto,
	})
}

// Remove deletes the assignment with the given id.
func (s *UserRoleService) Remove(ctx context.Context, id string) error {
	return client.Exec(ctx, s.client, client.Request{
		Method: http.MethodDelete,
		Path:   userRolesBase + "/" + url.PathEscape(id),
	})
}

func (s *UserRoleService) ForUser(ctx context.Context, userID string) ([]models.UserRole, error) {
	return listOrEmpty[models.UserRole](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   userRolesBase + "/user/" + url.PathEscape(userID),
	})
}

func (s *UserRoleService) ForRole(ctx context.Context, roleID string) ([]models.UserRole, error) {
	return listOrEmpty[models.UserRole](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   userRolesBase + "/role/" + url.PathEscape(roleID),
	})
}

func (s *UserRoleService) BulkAssign(ctx context.Context, dto models.BulkRolesDTO) ([]models.UserRole, error) {
	if err := models.Validate(dto); err != nil {
		return nil, err
	}
	return listOrEmpty[models.UserRole](ctx, s.client, client.Request{
		Method: http.MethodPost,
		Path:   userRolesBase + "/bulk-assign",
		Body:   dto,
	})
}

func (s *UserRoleService) BulkRemove(ctx context.Context, dto models.BulkRolesDTO) error {
	if err := models.Validate(dto); err != nil {
		return err
	}
	return client.Exec(ctx, s.client, client.Request{
		Method: http.MethodPost,
		Path:   userRolesBase + "/bulk-remove",
		Body:   dto,
	})
}

func (s *UserRoleService) UsersWithRoles(ctx context.Context, p models.ListParams) (*models.Page[models.UserWithRoles], error) {
	return client.List[models.UserWithRoles](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   userRolesBase + "/users-with-roles",
		Query:  p.Values(),
	})
}

// HasRole reports whether the user holds the role. Any failure reads as
// false.
func (s *UserRoleService) HasRole(ctx context.Context, userID, roleID string) bool {
	resp, err := client.Call[struct {
		HasRole bool `json:"hasRole"`
	}](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   userRolesBase + "/check/" + url.PathEscape(userID) + "/" + url.PathEscape(roleID),
	})
	if err != nil {
		return false
	}
	return resp.HasRole
}
