package httpserver

import (
	"context"
	"io"
	"log"

	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	authsvc "github.com/Rajvenkat512/fruits-webapp/internal/service/auth"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

var testConfig = config.Server{APIBasePath: "/api/v1", CORSOrigins: []string{"*"}}

type stubAuthService struct {
	resp     *domain.AuthResponse
	err      error
	tokens   map[string]string
	lastReg  domain.Registration
	lastCred domain.Credentials
}

func (s *stubAuthService) Register(_ context.Context, in domain.Registration) (*domain.AuthResponse, error) {
	s.lastReg = in
	return s.resp, s.err
}

func (s *stubAuthService) Login(_ context.Context, in domain.Credentials) (*domain.AuthResponse, error) {
	s.lastCred = in
	return s.resp, s.err
}

func (s *stubAuthService) Authenticate(_ context.Context, token string) (string, error) {
	if id, ok := s.tokens[token]; ok {
		return id, nil
	}
	return "", authsvc.ErrInvalidToken
}

type stubUserService struct {
	profiles map[string]domain.UserProfile
}

func (s *stubUserService) Profile(_ context.Context, userID string) (*domain.UserProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stubUserService) Update(_ context.Context, userID string, in domain.ProfileUpdate) (*domain.UserProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	in.Apply(&p)
	s.profiles[userID] = p
	return &p, nil
}

type stubProductService struct {
	products  []domain.Product
	lastQuery domain.ProductQuery
	created   *domain.ProductInput
}

func (s *stubProductService) List(_ context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	s.lastQuery = q
	return s.products, nil
}

func (s *stubProductService) Get(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductService) Create(_ context.Context, in domain.ProductInput) (*domain.Product, error) {
	s.created = &in
	return &domain.Product{ID: "new", Name: in.Name, Price: in.Price}, nil
}

func (s *stubProductService) Update(_ context.Context, id string, _ domain.ProductUpdate) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}

func (s *stubProductService) Delete(_ context.Context, _ string) error { return nil }

type stubCategoryService struct {
	categories []domain.Category
}

func (s *stubCategoryService) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryService) Get(_ context.Context, _ string) (*domain.Category, error) {
	return nil, domain.ErrNotFound
}

func (s *stubCategoryService) Create(_ context.Context, in domain.CategoryInput) (*domain.Category, error) {
	return &domain.Category{ID: "c-new", Name: in.Name}, nil
}

func (s *stubCategoryService) Update(_ context.Context, id string, _ domain.CategoryUpdate) (*domain.Category, error) {
	return &domain.Category{ID: id}, nil
}

func (s *stubCategoryService) Delete(_ context.Context, _ string) error { return nil }

type stubBannerService struct {
	banners []domain.Banner
}

func (s *stubBannerService) List(_ context.Context) ([]domain.Banner, error) {
	return s.banners, nil
}

type stubCartService struct {
	items   []domain.CartItem
	addErr  error
	lastAdd domain.AddToCartInput
	lastUID string
}

func (s *stubCartService) List(_ context.Context, userID string) ([]domain.CartItem, error) {
	s.lastUID = userID
	return s.items, nil
}

func (s *stubCartService) Add(_ context.Context, userID string, in domain.AddToCartInput) (*domain.CartItem, error) {
	s.lastUID = userID
	s.lastAdd = in
	if s.addErr != nil {
		return nil, s.addErr
	}
	return &domain.CartItem{ID: "line-1", UserID: userID, ProductID: in.ProductID, Quantity: in.Quantity}, nil
}

func (s *stubCartService) Update(_ context.Context, userID, itemID string, in domain.UpdateCartItemInput) (*domain.CartItem, error) {
	return &domain.CartItem{ID: itemID, UserID: userID, Quantity: in.Quantity}, nil
}

func (s *stubCartService) Remove(_ context.Context, _, itemID string) error {
	if itemID == "missing" {
		return domain.ErrNotFound
	}
	return nil
}

type stubWatchlistService struct{}

func (s *stubWatchlistService) List(_ context.Context, _ string) ([]domain.WatchlistItem, error) {
	return []domain.WatchlistItem{}, nil
}

func (s *stubWatchlistService) Add(_ context.Context, userID string, in domain.AddToWatchlistInput) (*domain.WatchlistItem, error) {
	return &domain.WatchlistItem{ID: "w1", UserID: userID, ProductID: in.ProductID}, nil
}

func (s *stubWatchlistService) Remove(_ context.Context, _, _ string) error { return nil }

type stubOrderService struct {
	created *domain.OrderDetail
	err     error
	lastReq domain.OrderRequest
}

func (s *stubOrderService) Create(_ context.Context, _ string, in domain.OrderRequest) (*domain.OrderDetail, error) {
	s.lastReq = in
	return s.created, s.err
}

func (s *stubOrderService) List(_ context.Context, _ string) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

func (s *stubOrderService) Get(_ context.Context, _, _ string) (*domain.OrderDetail, error) {
	return nil, domain.ErrNotFound
}

type stubReviewService struct{}

func (s *stubReviewService) Create(_ context.Context, userID string, in domain.ReviewInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.Invalid("rating must be between 1 and 5")
	}
	return &domain.Review{ID: "r1", UserID: userID, ProductID: in.ProductID, Rating: in.Rating}, nil
}

func (s *stubReviewService) ListByProduct(_ context.Context, _ string) ([]domain.Review, error) {
	return []domain.Review{}, nil
}

// testDeps returns stubbed dependencies with one USER ("tok-user") and one
// ADMIN ("tok-admin") session.
func testDeps() Deps {
	return Deps{
		AuthSvc: &stubAuthService{tokens: map[string]string{"tok-user": "u1", "tok-admin": "a1"}},
		UserSvc: &stubUserService{profiles: map[string]domain.UserProfile{
			"u1": {ID: "u1", Name: "Uma", Email: "uma@example.com", Role: authsvc.RoleUser},
			"a1": {ID: "a1", Name: "Ada", Email: "ada@example.com", Role: authsvc.RoleAdmin},
		}},
		ProductSvc:   &stubProductService{},
		CategorySvc:  &stubCategoryService{},
		BannerSvc:    &stubBannerService{},
		CartSvc:      &stubCartService{},
		WatchlistSvc: &stubWatchlistService{},
		OrderSvc:     &stubOrderService{},
		ReviewSvc:    &stubReviewService{},
	}
}
