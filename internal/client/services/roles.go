package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/arkania/internal/client/client"
	"github.com/dmitrijs2005/arkania/internal/client/models"
)

const rolesBase = "/roles"

type RoleService struct {
	client client.Client
}

func NewRoleService(c client.Client) *RoleService {
	return &RoleService{client: c}
}

func (s *RoleService) List(ctx context.Context, p models.ListParams) (*models.Page[models.Role], error) {
	return client.List[models.Role](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   rolesBase,
		Query:  p.Values(),
	})
}

// All returns every role without pagination.
func (s *RoleService) All(ctx context.Context) ([]models.Role, error) {
	return listOrEmpty[models.Role](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   rolesBase + "/all",
	})
}

func (s *RoleService) Get(ctx context.Context, id string) (*models.Role, error) {
	return client.Call[models.Role](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   rolesBase + "/" + url.PathEscape(id),
	})
}

func (s *RoleService) Create(ctx context.Context, dto models.CreateRoleDTO) (*models.Role, error) {
	if err := models.Validate(dto); err != nil {
		return nil, err
	}
	return client.Call[models.Role](ctx, s.client, client.Request{
		Method: http.MethodPost,
		Path:   rolesBase,
		Body:   dto,
	})
}

func (s *RoleService) Update(ctx context.Context, id string, dto models.UpdateRoleDTO) (*models.Role, error) {
	if err := models.Validate(dto); err != nil {
		return nil, err
	}
	return client.Call[models.Role](ctx, s.client, client.Request{
		Method: http.MethodPut,
		Path:   rolesBase + "/" + url.PathEscape(id),
		Body:   dto,
	})
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	return client.Exec(ctx, s.client, client.Request{
		Method: http.MethodDelete,
		Path:   rolesBase + "/" + url.PathEscape(id),
	})
}

func (s *RoleService) Search(ctx context.Context, term string) ([]models.Role, error) {
	return listOrEmpty[models.Role](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   rolesBase + "/search",
		Query:  url.Values{"q": {term}},
	})
}

// Permissions lists the permission names the backend knows about.
func (s *RoleService) Permissions(ctx context.Context) ([]string, error) {
	return listOrEmpty[string](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   rolesBase + "/permissions",
	})
}
