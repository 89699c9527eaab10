// Package review wraps the product review endpoints.
package review

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

func (s *Service) Create(ctx context.Context, in domain.ReviewInput) (*domain.Review, error) {
	var out domain.Review
	if err := s.api.Post(ctx, "/reviews", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	var out []domain.Review
	if err := s.api.Get(ctx, "/reviews", url.Values{"productId": {productID}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
