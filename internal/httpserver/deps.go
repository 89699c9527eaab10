package httpserver

import (
	"context"
	"errors"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, in domain.Registration) (*domain.AuthResponse, error)
	Login(ctx context.Context, in domain.Credentials) (*domain.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.UserProfile, error)
	Update(ctx context.Context, userID string, in domain.ProfileUpdate) (*domain.UserProfile, error)
}

type ProductService interface {
	List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in domain.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in domain.CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type BannerService interface {
	List(ctx context.Context) ([]domain.Banner, error)
}

type CartService interface {
	List(ctx context.Context, userID string) ([]domain.CartItem, error)
	Add(ctx context.Context, userID string, in domain.AddToCartInput) (*domain.CartItem, error)
	Update(ctx context.Context, userID, itemID string, in domain.UpdateCartItemInput) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, itemID string) error
}

type WatchlistService interface {
	List(ctx context.Context, userID string) ([]domain.WatchlistItem, error)
	Add(ctx context.Context, userID string, in domain.AddToWatchlistInput) (*domain.WatchlistItem, error)
	Remove(ctx context.Context, userID, itemID string) error
}

type OrderService interface {
	Create(ctx context.Context, userID string, in domain.OrderRequest) (*domain.OrderDetail, error)
	List(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, userID, id string) (*domain.OrderDetail, error)
}

type ReviewService interface {
	Create(ctx context.Context, userID string, in domain.ReviewInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}

// Deps are the services the router dispatches to. All are required.
type Deps struct {
	AuthSvc      AuthService
	UserSvc      UserService
	ProductSvc   ProductService
	CategorySvc  CategoryService
	BannerSvc    BannerService
	CartSvc      CartService
	WatchlistSvc WatchlistService
	OrderSvc     OrderService
	ReviewSvc    ReviewService
}

func (d Deps) validate() error {
	switch {
	case d.AuthSvc == nil:
		return errors.New("auth service required")
	case d.UserSvc == nil:
		return errors.New("user service required")
	case d.ProductSvc == nil:
		return errors.New("product service required")
	case d.CategorySvc == nil:
		return errors.New("category service required")
	case d.BannerSvc == nil:
		return errors.New("banner service required")
	case d.CartSvc == nil:
		return errors.New("cart service required")
	case d.WatchlistSvc == nil:
		return errors.New("watchlist service required")
	case d.OrderSvc == nil:
		return errors.New("order service required")
	case d.ReviewSvc == nil:
		return errors.New("review service required")
	}
	return nil
}
