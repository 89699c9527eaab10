package review

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, userID string, in domain.ReviewInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}
