package product

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type Repository interface {
	List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in domain.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// UpsertBySlug is used by the seeder and the importer.
	UpsertBySlug(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}
