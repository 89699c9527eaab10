package order

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Rajvenkat512/fruits-webapp/internal/checkout"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	orderrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/order"
)

var paymentMethods = map[string]bool{
	domain.PaymentCashOnDelivery: true,
	domain.PaymentCard:           true,
	domain.PaymentPaypal:         true,
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	repo     orderrepo.Repository
	products productRepo
	pricing  checkout.Pricing
}

func New(repo orderrepo.Repository, products productRepo, pricing checkout.Pricing) *Service {
	return &Service{repo: repo, products: products, pricing: pricing}
}

// Create prices the requested lines from the catalog, applies the flat
// charges and promo code, and stores the order.
func (s *Service) Create(ctx context.Context, userID string, in domain.OrderRequest) (*domain.OrderDetail, error) {
	if len(in.Items) == 0 {
		return nil, domain.Invalid("order must contain at least one item")
	}
	method := strings.ToUpper(strings.TrimSpace(in.PaymentMethod))
	if method == "" {
		method = domain.PaymentCashOnDelivery
	}
	if !paymentMethods[method] {
		return nil, domain.Invalid("unsupported payment method %q", in.PaymentMethod)
	}
	addr := in.ShippingAddress
	if strings.TrimSpace(addr.Street) == "" || strings.TrimSpace(addr.City) == "" {
		return nil, domain.Invalid("shipping address needs a street and city")
	}

	lines, err := s.priceLines(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	summary := s.pricing.Summarize(subtotal, in.Code)

	return s.repo.Create(ctx, orderrepo.NewOrder{
		UserID:          userID,
		Lines:           lines,
		Total:           summary.Total,
		ShippingAddress: addr,
		PaymentMethod:   method,
		CouponCode:      summary.Code,
	})
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.OrderDetail, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// priceLines merges repeated products and snapshots name, image and price.
func (s *Service) priceLines(ctx context.Context, items []domain.OrderItemInput) ([]orderrepo.Line, error) {
	index := make(map[string]int, len(items))
	lines := make([]orderrepo.Line, 0, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" {
			return nil, domain.Invalid("productId required")
		}
		if it.Quantity <= 0 {
			return nil, domain.Invalid("quantity must be positive")
		}
		if i, ok := index[id]; ok {
			lines[i].Quantity += it.Quantity
			continue
		}
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Invalid("product %s not found", id)
			}
			return nil, err
		}
		index[id] = len(lines)
		lines = append(lines, orderrepo.Line{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}
