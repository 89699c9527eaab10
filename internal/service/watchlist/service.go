package watchlist

import (
	"context"
	"strings"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	watchlistrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/watchlist"
)

type Service struct {
	repo watchlistrepo.Repository
}

func New(repo watchlistrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.WatchlistItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID string, in domain.AddToWatchlistInput) (*domain.WatchlistItem, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, domain.Invalid("productId required")
	}
	return s.repo.Add(ctx, userID, productID)
}

func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	return s.repo.Remove(ctx, userID, itemID)
}
