package watchlist

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

// Repository stores wishlist entries. Adding a product twice returns the
// existing entry.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.WatchlistItem, error)
	Add(ctx context.Context, userID, productID string) (*domain.WatchlistItem, error)
	Remove(ctx context.Context, userID, itemID string) error
}
