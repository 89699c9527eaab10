// Package seed loads the demo catalog and the demo account.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	bannerrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/banner"
	categoryrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/category"
	productrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/product"
	tokenrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/token"
	userrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/user"
	authsvc "github.com/Rajvenkat512/fruits-webapp/internal/service/auth"
)

// Demo account matching the hint on the storefront login screen.
const (
	DemoEmail    = "user@example.com"
	DemoPassword = "password123"
)

type CategoryWriter interface {
	UpsertBySlug(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
}

type ProductWriter interface {
	UpsertBySlug(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

type BannerWriter interface {
	Upsert(ctx context.Context, b domain.Banner) (*domain.Banner, error)
}

type Registrar interface {
	Register(ctx context.Context, in domain.Registration) (*domain.AuthResponse, error)
}

// Writers are the sinks Run seeds into.
type Writers struct {
	Categories CategoryWriter
	Products   ProductWriter
	Banners    BannerWriter
	Users      Registrar
}

type productSeed struct {
	Name        string
	Description string
	Price       string
	Image       string
	Stock       int
	Category    string
}

var categories = []domain.CategoryInput{
	{Name: "Citrus", Slug: "citrus", Image: "https://images.unsplash.com/photo-1582979512210-99b6a53386f9", Description: "Oranges, lemons and limes"},
	{Name: "Berries", Slug: "berries", Image: "https://images.unsplash.com/photo-1498557850523-fd3d118b962e", Description: "Small, sweet and bright"},
	{Name: "Tropical", Slug: "tropical", Image: "https://images.unsplash.com/photo-1550258987-190a2d41a8ba", Description: "Mangoes, pineapples and more"},
	{Name: "Orchard", Slug: "orchard", Image: "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce", Description: "Apples, pears and stone fruit"},
}

var products = []productSeed{
	{Name: "Valencia Orange", Description: "Juicy and sweet, great for juicing", Price: "3.49", Stock: 120, Category: "citrus", Image: "https://images.unsplash.com/photo-1547514701-42782101795e"},
	{Name: "Meyer Lemon", Description: "Thin skinned with a floral aroma", Price: "2.99", Stock: 80, Category: "citrus", Image: "https://images.unsplash.com/photo-1590502593747-42a996133562"},
	{Name: "Strawberries", Description: "Hand picked, 250 g punnet", Price: "4.25", Stock: 60, Category: "berries", Image: "https://images.unsplash.com/photo-1464965911861-746a04b4bca6"},
	{Name: "Blueberries", Description: "Antioxidant rich, 125 g punnet", Price: "3.75", Stock: 70, Category: "berries", Image: "https://images.unsplash.com/photo-1498557850523-fd3d118b962e"},
	{Name: "Alphonso Mango", Description: "The king of mangoes", Price: "5.99", Stock: 40, Category: "tropical", Image: "https://images.unsplash.com/photo-1553279768-865429fa0078"},
	{Name: "Pineapple", Description: "Golden and tangy", Price: "4.50", Stock: 30, Category: "tropical", Image: "https://images.unsplash.com/photo-1550258987-190a2d41a8ba"},
	{Name: "Banana", Description: "Sold by the bunch", Price: "1.99", Stock: 150, Category: "tropical", Image: "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e"},
	{Name: "Honeycrisp Apple", Description: "Crunchy and sweet", Price: "2.49", Stock: 100, Category: "orchard", Image: "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce"},
	{Name: "Bartlett Pear", Description: "Buttery and aromatic", Price: "2.79", Stock: 50, Category: "orchard", Image: "https://images.unsplash.com/photo-1514756331096-242fdeb70d4a"},
	{Name: "Peach", Description: "Summer stone fruit", Price: "3.10", Stock: 45, Category: "orchard", Image: "https://images.unsplash.com/photo-1629828874514-c1e5103f2150"},
}

var banners = []domain.Banner{
	{Title: "Summer Sale", Description: "Use SUMMER50 at checkout", Image: "https://images.unsplash.com/photo-1610832958506-aa56368176cf", IsActive: true, Order: 1},
	{Title: "Fresh From The Farm", Description: "Picked this morning", Image: "https://images.unsplash.com/photo-1619566636858-adf3ef46400b", IsActive: true, Order: 2},
	{Title: "Tropical Week", Description: "Mangoes are back", Image: "https://images.unsplash.com/photo-1490885578174-acda8905c2c6", IsActive: true, Order: 3},
}

// Apply seeds the database behind pool. It is idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	return Run(ctx, Writers{
		Categories: categoryrepo.NewPostgres(pool),
		Products:   productrepo.NewPostgres(pool, logger),
		Banners:    bannerrepo.NewPostgres(pool),
		Users:      authsvc.New(userrepo.NewPostgres(pool, logger), tokenrepo.NewPostgres(pool)),
	}, logger)
}

// Run upserts categories, products and banners by their natural keys and
// registers the demo account unless it already exists.
func Run(ctx context.Context, w Writers, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ids := make(map[string]string, len(categories))
	for _, c := range categories {
		saved, err := w.Categories.UpsertBySlug(ctx, c)
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
		ids[c.Slug] = saved.ID
	}

	for _, p := range products {
		in := domain.ProductInput{
			Name:        p.Name,
			Slug:        domain.Slugify(p.Name),
			Description: p.Description,
			Price:       decimal.RequireFromString(p.Price),
			Image:       p.Image,
			Stock:       p.Stock,
			CategoryID:  ids[p.Category],
		}
		if _, err := w.Products.UpsertBySlug(ctx, in); err != nil {
			return fmt.Errorf("upsert product %s: %w", in.Slug, err)
		}
	}

	for _, b := range banners {
		if _, err := w.Banners.Upsert(ctx, b); err != nil {
			return fmt.Errorf("upsert banner %q: %w", b.Title, err)
		}
	}

	_, err := w.Users.Register(ctx, domain.Registration{Email: DemoEmail, Password: DemoPassword, Name: "Demo User"})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		logger.Printf("seed: demo user %s already present", DemoEmail)
	case err != nil:
		return fmt.Errorf("register demo user: %w", err)
	}

	logger.Printf("seed: %d categories, %d products, %d banners", len(categories), len(products), len(banners))
	return nil
}
