// Package product wraps the catalog product endpoints.
package product

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

const basePath = "/admin/products"

type Service struct {
	api requester
}

func New(api requester) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	var out []domain.Product
	if err := s.api.Get(ctx, basePath, queryValues(q), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	if err := s.api.Get(ctx, basePath+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := s.api.Post(ctx, basePath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Update(ctx context.Context, id string, in domain.ProductUpdate) (*domain.Product, error) {
	var out domain.Product
	if err := s.api.Put(ctx, basePath+"/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, basePath+"/"+url.PathEscape(id))
}

func queryValues(q domain.ProductQuery) url.Values {
	v := url.Values{}
	if q.CategoryID != "" {
		v.Set("categoryId", q.CategoryID)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}
