// Package watchlist wraps the wishlist endpoints.
package watchlist

import (
	"context"
	"net/url"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

type Service struct {
	api requester
}

func New(api requester) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context) ([]domain.WatchlistItem, error) {
	var out []domain.WatchlistItem
	if err := s.api.Get(ctx, "/watchlist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Add(ctx context.Context, productID string) (*domain.WatchlistItem, error) {
	var out domain.WatchlistItem
	if err := s.api.Post(ctx, "/watchlist", domain.AddToWatchlistInput{ProductID: productID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Remove(ctx context.Context, itemID string) error {
	return s.api.Delete(ctx, "/watchlist/"+url.PathEscape(itemID))
}
