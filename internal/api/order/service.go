// Package order wraps checkout and order history endpoints.
package order

import (
	"context"
	"net/url"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

type Service struct {
	api requester
}

func New(api requester) *Service {
	return &Service{api: api}
}

func (s *Service) Create(ctx context.Context, in domain.OrderRequest) (*domain.Order, error) {
	var out domain.Order
	if err := s.api.Post(ctx, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := s.api.Get(ctx, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.OrderDetail, error) {
	var out domain.OrderDetail
	if err := s.api.Get(ctx, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
