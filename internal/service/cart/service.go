package cart

import (
	"context"
	"errors"
	"strings"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	cartrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/cart"
)

type Service struct {
	repo        cartrepo.Repository
	productRepo productRepo
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add puts quantity units of a product in the cart, merging with an existing
// line for the same product.
func (s *Service) Add(ctx context.Context, userID string, in domain.AddToCartInput) (*domain.CartItem, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, domain.Invalid("productId required")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity must be positive")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("product not found")
		}
		return nil, err
	}
	if product.Stock < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}
	return s.repo.Add(ctx, userID, product.ID, in.Quantity)
}

func (s *Service) Update(ctx context.Context, userID, itemID string, in domain.UpdateCartItemInput) (*domain.CartItem, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, domain.Invalid("item id required")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity must be positive")
	}
	return s.repo.UpdateQuantity(ctx, userID, itemID, in.Quantity)
}

func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	return s.repo.Remove(ctx, userID, itemID)
}
