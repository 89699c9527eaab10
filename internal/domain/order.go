package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status values used by the API.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Payment methods accepted at checkout.
const (
	PaymentCashOnDelivery = "CASH_ON_DELIVERY"
	PaymentCard           = "CARD"
	PaymentPaypal         = "PAYPAL"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// OrderRequest is the checkout payload of POST /orders.
type OrderRequest struct {
	Items           []OrderItemInput `json:"items"`
	ShippingAddress ShippingAddress  `json:"shippingAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
	Code            string           `json:"code,omitempty"`
}

// Order is the summary returned by order listing and creation.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt,omitzero"`
}

// OrderLine is a purchased line with its price at order time.
type OrderLine struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Product   OrderProduct    `json:"product"`
}

// OrderProduct is the product snapshot stored with an order line.
type OrderProduct struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Payment records how an order was paid.
type Payment struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

// OrderDetail is the full order returned by GET /orders/:id.
type OrderDetail struct {
	Order
	Items           []OrderLine       `json:"items"`
	ShippingAddress []ShippingAddress `json:"shippingAddress"`
	Payments        []Payment         `json:"payments"`
	CouponID        *string           `json:"couponId"`
	UpdatedAt       time.Time         `json:"updatedAt,omitzero"`
}
