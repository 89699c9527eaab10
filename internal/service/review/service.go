package review

import (
	"context"
	"strings"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	reviewrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/review"
)

const (
	minRating = 1
	maxRating = 5
)

type Service struct {
	repo reviewrepo.Repository
}

func New(repo reviewrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID string, in domain.ReviewInput) (*domain.Review, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.ProductID == "" {
		return nil, domain.Invalid("productId required")
	}
	if in.Rating < minRating || in.Rating > maxRating {
		return nil, domain.Invalid("rating must be between %d and %d", minRating, maxRating)
	}
	in.Comment = strings.TrimSpace(in.Comment)
	return s.repo.Create(ctx, userID, in)
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domain.Invalid("productId required")
	}
	return s.repo.ListByProduct(ctx, productID)
}
