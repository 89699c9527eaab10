package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProductSnapshot is the denormalized product copy carried by cart and
// watchlist lines.
type ProductSnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

func (p *ProductSnapshot) UnmarshalJSON(b []byte) error {
	type plain ProductSnapshot
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = ProductSnapshot(aux.plain)
	p.ID = pickID(p.ID, aux.MongoID)
	return nil
}

// SnapshotOf copies the fields of p that cart and watchlist lines carry.
func SnapshotOf(p Product) *ProductSnapshot {
	return &ProductSnapshot{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}
}

// CartItem is one cart line owned by a user.
type CartItem struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	ProductID string           `json:"productId"`
	Product   *ProductSnapshot `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	CreatedAt time.Time        `json:"createdAt,omitzero"`
	UpdatedAt time.Time        `json:"updatedAt,omitzero"`
}

func (c *CartItem) UnmarshalJSON(b []byte) error {
	type plain CartItem
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*c = CartItem(aux.plain)
	c.ID = pickID(c.ID, aux.MongoID)
	return nil
}

// UnitPrice is the snapshot price, zero when the snapshot is missing.
func (c CartItem) UnitPrice() decimal.Decimal {
	if c.Product == nil {
		return decimal.Zero
	}
	return c.Product.Price
}

// LineTotal is the unit price times the quantity.
func (c CartItem) LineTotal() decimal.Decimal {
	return c.UnitPrice().Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// AddToCartInput is the payload of POST /cart.
type AddToCartInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemInput is the payload of PUT /cart/:id.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// WatchlistItem is one wishlist entry owned by a user.
type WatchlistItem struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	ProductID string           `json:"productId"`
	Product   *ProductSnapshot `json:"product,omitempty"`
	CreatedAt time.Time        `json:"createdAt,omitzero"`
	UpdatedAt time.Time        `json:"updatedAt,omitzero"`
}

func (w *WatchlistItem) UnmarshalJSON(b []byte) error {
	type plain WatchlistItem
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*w = WatchlistItem(aux.plain)
	w.ID = pickID(w.ID, aux.MongoID)
	return nil
}

// AddToWatchlistInput is the payload of POST /watchlist.
type AddToWatchlistInput struct {
	ProductID string `json:"productId"`
}
