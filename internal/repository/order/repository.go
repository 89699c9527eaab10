package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

// Line is a priced order line ready to be stored.
type Line struct {
	ProductID string
	Name      string
	Image     string
	Price     decimal.Decimal
	Quantity  int
}

// NewOrder is everything Create needs to persist an order.
type NewOrder struct {
	UserID          string
	Lines           []Line
	Total           decimal.Decimal
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	CouponCode      string
}

// Repository stores orders. Create also reserves stock and empties the
// user's cart in the same transaction.
type Repository interface {
	Create(ctx context.Context, in NewOrder) (*domain.OrderDetail, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetByID(ctx context.Context, userID, id string) (*domain.OrderDetail, error)
}
