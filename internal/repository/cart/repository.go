package cart

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

// Repository stores cart lines per user. Adding a product that is already in
// the cart increases the existing line.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	Get(ctx context.Context, userID, itemID string) (*domain.CartItem, error)
	Add(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, itemID string) error
}
