// Package category wraps the category endpoints.
package category

import (
	"context"
	"net/url"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

const basePath = "/admin/categories"

type Service struct {
	api requester
}

func New(api requester) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := s.api.Get(ctx, basePath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	var out domain.Category
	if err := s.api.Get(ctx, basePath+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := s.api.Post(ctx, basePath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Update(ctx context.Context, id string, in domain.CategoryUpdate) (*domain.Category, error) {
	var out domain.Category
	if err := s.api.Put(ctx, basePath+"/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, basePath+"/"+url.PathEscape(id))
}
