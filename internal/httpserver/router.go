package httpserver

import (
	"fmt"
	"io"
	"log"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/config"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, cfg config.Server, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("httpserver: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(cfg.CORSOrigins), requestIDMiddleware())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}
	api := router.Group(cfg.APIBasePath)
	authed := authMiddleware(deps.AuthSvc)
	admin := adminMiddleware(deps.UserSvc, logger)

	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)

	api.GET("/admin/products", h.listProducts)
	api.GET("/admin/products/:id", h.getProduct)
	api.POST("/admin/products", authed, admin, h.createProduct)
	api.PUT("/admin/products/:id", authed, admin, h.updateProduct)
	api.DELETE("/admin/products/:id", authed, admin, h.deleteProduct)

	api.GET("/admin/categories", h.listCategories)
	api.GET("/admin/categories/:id", h.getCategory)
	api.POST("/admin/categories", authed, admin, h.createCategory)
	api.PUT("/admin/categories/:id", authed, admin, h.updateCategory)
	api.DELETE("/admin/categories/:id", authed, admin, h.deleteCategory)

	api.GET("/admin/banners", h.listBanners)

	api.GET("/reviews", h.listReviews)
	api.POST("/reviews", authed, h.createReview)

	user := api.Group("", authed)
	user.GET("/profile", h.getProfile)
	user.PUT("/profile", h.updateProfile)

	user.GET("/cart", h.listCart)
	user.POST("/cart", h.addToCart)
	user.PUT("/cart/:id", h.updateCartItem)
	user.DELETE("/cart/:id", h.removeCartItem)

	user.GET("/watchlist", h.listWatchlist)
	user.POST("/watchlist", h.addToWatchlist)
	user.DELETE("/watchlist/:id", h.removeFromWatchlist)

	user.POST("/orders", h.createOrder)
	user.GET("/orders", h.listOrders)
	user.GET("/orders/:id", h.getOrder)

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", userIDHeader, requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
