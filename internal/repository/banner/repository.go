package banner

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type Repository interface {
	// ListActive returns active banners in display order.
	ListActive(ctx context.Context) ([]domain.Banner, error)
	Upsert(ctx context.Context, b domain.Banner) (*domain.Banner, error)
}
