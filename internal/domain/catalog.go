package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// legacyID captures the "_id" alias some backends emit next to or instead of "id".
type legacyID struct {
	MongoID string `json:"_id"`
}

func pickID(id, alias string) string {
	if id != "" {
		return id
	}
	return alias
}

// Product is a catalog entry.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"categoryId"`
	Category    *CategoryRef    `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt,omitzero"`
	UpdatedAt   time.Time       `json:"updatedAt,omitzero"`
}

func (p *Product) UnmarshalJSON(b []byte) error {
	type plain Product
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = Product(aux.plain)
	p.ID = pickID(p.ID, aux.MongoID)
	return nil
}

// CategoryRef is the category summary embedded in a product.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *CategoryRef) UnmarshalJSON(b []byte) error {
	type plain CategoryRef
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*c = CategoryRef(aux.plain)
	c.ID = pickID(c.ID, aux.MongoID)
	return nil
}

// ProductQuery filters product listings. Zero values are not sent.
type ProductQuery struct {
	CategoryID string
	Search     string
	Page       int
	Limit      int
}

// ProductInput is the create payload for a product.
type ProductInput struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"categoryId"`
}

// ProductUpdate is a partial product update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Slug        *string          `json:"slug,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
}

// Category groups products.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

func (c *Category) UnmarshalJSON(b []byte) error {
	type plain Category
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*c = Category(aux.plain)
	c.ID = pickID(c.ID, aux.MongoID)
	return nil
}

// CategoryInput is the create payload for a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// CategoryUpdate is a partial category update.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Banner is a promotional slide shown on the home screen.
type Banner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	Order       int    `json:"order,omitempty"`
}

func (bn *Banner) UnmarshalJSON(b []byte) error {
	type plain Banner
	var aux struct {
		plain
		legacyID
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*bn = Banner(aux.plain)
	bn.ID = pickID(bn.ID, aux.MongoID)
	return nil
}

// Review is a rating left by a user on a product.
type Review struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ReviewInput is the create payload for a review.
type ReviewInput struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
