// Package checkout prices a cart and places the order.
package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPromoCode is the code applied at checkout unless the shopper picks
// another one.
const DefaultPromoCode = "SUMMER50"

// Pricing holds the flat charges and promo discounts added to a subtotal.
type Pricing struct {
	Delivery decimal.Decimal
	Tax      decimal.Decimal
	Promos   map[string]decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		Delivery: decimal.RequireFromString("6.00"),
		Tax:      decimal.RequireFromString("2.00"),
		Promos: map[string]decimal.Decimal{
			DefaultPromoCode: decimal.RequireFromString("2.20"),
		},
	}
}

// Summary is the order summary shown before paying.
type Summary struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Delivery decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	// Code is the promo code that was applied, empty when none matched.
	Code string
}

// Discount looks up a promo code, ignoring case and surrounding space.
func (p Pricing) Discount(code string) (decimal.Decimal, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return decimal.Zero, false
	}
	d, ok := p.Promos[code]
	return d, ok
}

// Summarize computes subtotal + delivery + tax - discount, never below zero.
func (p Pricing) Summarize(subtotal decimal.Decimal, code string) Summary {
	s := Summary{Subtotal: subtotal, Delivery: p.Delivery, Tax: p.Tax, Discount: decimal.Zero}
	if d, ok := p.Discount(code); ok {
		s.Discount = d
		s.Code = strings.ToUpper(strings.TrimSpace(code))
	}
	s.Total = subtotal.Add(p.Delivery).Add(p.Tax).Sub(s.Discount)
	if s.Total.IsNegative() {
		s.Total = decimal.Zero
	}
	return s
}
