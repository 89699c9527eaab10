package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type stubBanners []domain.Banner

func (s stubBanners) List(context.Context) []domain.Banner { return s }

type stubCategories struct {
	cats []domain.Category
	err  error
}

func (s stubCategories) List(context.Context) ([]domain.Category, error) { return s.cats, s.err }

type stubProducts struct {
	last chan domain.ProductQuery
	err  error
}

func (s stubProducts) List(_ context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	select {
	case s.last <- q:
	default:
	}
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Product{{ID: "p1"}, {ID: "p2"}}, nil
}

func TestLoadCombinesSections(t *testing.T) {
	products := stubProducts{last: make(chan domain.ProductQuery, 1)}
	h := NewHome(stubBanners{{ID: "b1"}}, stubCategories{cats: []domain.Category{{ID: "c1"}}}, products)
	h.Limit = 10

	feed, err := h.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed.Banners, 1)
	assert.Len(t, feed.Categories, 1)
	assert.Len(t, feed.Products, 2)
	assert.Equal(t, 10, (<-products.last).Limit)
}

func TestLoadFailsOnCategoryError(t *testing.T) {
	h := NewHome(stubBanners{}, stubCategories{err: errors.New("down")}, stubProducts{})
	_, err := h.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categories")
}

func TestCategoryProductsFiltersByCategory(t *testing.T) {
	products := stubProducts{last: make(chan domain.ProductQuery, 1)}
	h := NewHome(stubBanners{}, stubCategories{}, products)
	_, err := h.CategoryProducts(context.Background(), "citrus")
	require.NoError(t, err)
	assert.Equal(t, "citrus", (<-products.last).CategoryID)
}
