// Package catalog assembles the home screen feed.
package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type Banners interface {
	List(ctx context.Context) []domain.Banner
}

type Categories interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type Products interface {
	List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
}

// Feed is everything the home screen shows.
type Feed struct {
	Banners    []domain.Banner
	Categories []domain.Category
	Products   []domain.Product
}

type Home struct {
	banners    Banners
	categories Categories
	products   Products
	// Limit caps the featured product list; zero means the server default.
	Limit int
}

func NewHome(b Banners, c Categories, p Products) *Home {
	return &Home{banners: b, categories: c, products: p}
}

// Load fetches the three sections concurrently. Banners never fail the feed.
func (h *Home) Load(ctx context.Context) (*Feed, error) {
	var feed Feed
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		feed.Banners = h.banners.List(ctx)
		return nil
	})
	g.Go(func() error {
		cats, err := h.categories.List(ctx)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		feed.Categories = cats
		return nil
	})
	g.Go(func() error {
		products, err := h.products.List(ctx, domain.ProductQuery{Limit: h.Limit})
		if err != nil {
			return fmt.Errorf("products: %w", err)
		}
		feed.Products = products
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &feed, nil
}

// CategoryProducts lists the products of one category.
func (h *Home) CategoryProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return h.products.List(ctx, domain.ProductQuery{CategoryID: categoryID})
}

// Search lists products matching term.
func (h *Home) Search(ctx context.Context, term string, page int) ([]domain.Product, error) {
	return h.products.List(ctx, domain.ProductQuery{Search: term, Page: page, Limit: h.Limit})
}
