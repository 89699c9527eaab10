package category

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in domain.CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	// UpsertBySlug is used by the seeder and the importer.
	UpsertBySlug(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
}
