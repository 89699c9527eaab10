// Package cart wraps the cart endpoints.
package cart

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

type Service struct {
	api requester
}

func New(api requester) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := s.api.Get(ctx, "/cart", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Add(ctx context.Context, productID string, quantity int) (*domain.CartItem, error) {
	var out domain.CartItem
	in := domain.AddToCartInput{ProductID: productID, Quantity: quantity}
	if err := s.api.Post(ctx, "/cart", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Update(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	var out domain.CartItem
	in := domain.UpdateCartItemInput{Quantity: quantity}
	if err := s.api.Put(ctx, "/cart/"+url.PathEscape(itemID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Remove(ctx context.Context, itemID string) error {
	return s.api.Delete(ctx, "/cart/"+url.PathEscape(itemID))
}
