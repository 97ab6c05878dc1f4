package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/arkania/internal/client/client"
	"github.com/dmitrijs2005/arkania/internal/client/models"
)

const usersBase = "/users"

type UserService struct {
	client client.Client
}

func NewUserService(c client.Client) *UserService {
	return &UserService{client: c}
}

func (s *UserService) List(ctx context.Context, p models.ListParams) (*models.Page[models.User], error) {
	return client.List[models.User](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   usersBase,
		Query:  p.Values(),
	})
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return client.Call[models.User](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   usersBase + "/" + url.PathEscape(id),
	})
}

func (s *UserService) Create(ctx context.Context, dto models.CreateUserDTO) (*models.User, error) {
	if err := models.Validate(dto); err != nil {
		return nil, err
	}
	return client.Call[models.User](ctx, s.client, client.Request{
		Method: http.MethodPost,
		Path:   usersBase,
		Body:   dto,
	})
}

func (s *UserService) Update(ctx context.Context, id string, dto models.UpdateUserDTO) (*models.User, error) {
	if err := models.Validate(dto); err != nil {
		return nil, err
	}
	return client.Call[models.User](ctx, s.client, client.Request{
		Method: http.MethodPut,
		Path:   usersBase + "/" + url.PathEscape(id),
		Body:   dto,
	})
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return client.Exec(ctx, s.client, client.Request{
		Method: http.MethodDelete,
		Path:   usersBase + "/" + url.PathEscape(id),
	})
}

// SetActive enables or disables the account.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	return client.Call[models.User](ctx, s.client, client.Request{
		Method: http.MethodPut,
		Path:   usersBase + "/" + url.PathEscape(id) + "/status",
		Body:   map[string]bool{"isActive": active},
	})
}

// Search returns users matching term. A response without data is an empty
// result, not an error.
func (s *UserService) Search(ctx context.Context, term string) ([]models.User, error) {
	return listOrEmpty[models.User](ctx, s.client, client.Request{
		Method: http.MethodGet,
		Path:   usersBase + "/search",
		Query:  url.Values{"q": {term}},
	})
}

// listOrEmpty unwraps an unpaginated array endpoint.
func listOrEmpty[T any](ctx context.Context, c client.Client, r client.Request) ([]T, error) {
	items, err := client.Call[[]T](ctx, c, r)
	if err != nil {
		if errors.Is(err, client.ErrNoData) {
			return []T{}, nil
		}
		return nil, err
	}
	return *items, nil
}
