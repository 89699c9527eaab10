package checkout

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/shopspring/decimal"

	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// Cart is the part of the cart store checkout reads and refreshes.
type Cart interface {
	Items() []domain.CartItem
	TotalPrice() decimal.Decimal
	Fetch(ctx context.Context) error
}

type Orders interface {
	Create(ctx context.Context, in domain.OrderRequest) (*domain.Order, error)
}

type Request struct {
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	Code            string
}

type Result struct {
	Order   *domain.Order
	Summary Summary
}

type Service struct {
	cart    Cart
	orders  Orders
	pricing Pricing
	logger  *log.Logger
}

func NewService(cart Cart, orders Orders, pricing Pricing, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{cart: cart, orders: orders, pricing: pricing, logger: logger}
}

// Summary prices the current cart.
func (s *Service) Summary(code string) Summary {
	return s.pricing.Summarize(s.cart.TotalPrice(), code)
}

// PlaceOrder submits the cart as an order and then refreshes the cart, which
// the server empties on success. A failed refresh is logged only.
func (s *Service) PlaceOrder(ctx context.Context, req Request) (*Result, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	lines := make([]domain.OrderItemInput, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	method := req.PaymentMethod
	if method == "" {
		method = domain.PaymentCashOnDelivery
	}
	summary := s.Summary(req.Code)

	order, err := s.orders.Create(ctx, domain.OrderRequest{
		Items:           lines,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   method,
		Code:            req.Code,
	})
	if err != nil {
		s.logger.Printf("checkout: create order error=%v", err)
		return nil, err
	}
	if err := s.cart.Fetch(ctx); err != nil {
		s.logger.Printf("checkout: refresh cart error=%v", err)
	}
	return &Result{Order: order, Summary: summary}, nil
}

// ErrorMessage is the text shown when PlaceOrder fails.
func ErrorMessage(err error) string {
	if errors.Is(err, ErrEmptyCart) {
		return "Your cart is empty"
	}
	return apiclient.Message(err, "Failed to place order")
}
