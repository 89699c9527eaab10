package product

import (
	"context"
	"strings"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	productrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	if q.Page < 0 || q.Limit < 0 {
		return nil, domain.Invalid("page and limit must not be negative")
	}
	q.Search = strings.TrimSpace(q.Search)
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates in and derives the slug from the name when it is empty.
func (s *Service) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.Invalid("name required")
	}
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = domain.Slugify(in.Name)
	}
	if in.Price.IsNegative() {
		return nil, domain.Invalid("price must not be negative")
	}
	if in.Stock < 0 {
		return nil, domain.Invalid("stock must not be negative")
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Update(ctx context.Context, id string, in domain.ProductUpdate) (*domain.Product, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.Invalid("name cannot be empty")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.Invalid("price must not be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.Invalid("stock must not be negative")
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
