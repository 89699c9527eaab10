package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rajvenkat512/fruits-webapp/internal/checkout"
	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/httpserver"
	bannerrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/banner"
	cartrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/cart"
	categoryrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/category"
	orderrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/order"
	productrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/product"
	reviewrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/review"
	tokenrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/token"
	userrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/user"
	watchlistrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/watchlist"
	authsvc "github.com/Rajvenkat512/fruits-webapp/internal/service/auth"
	bannersvc "github.com/Rajvenkat512/fruits-webapp/internal/service/banner"
	cartsvc "github.com/Rajvenkat512/fruits-webapp/internal/service/cart"
	categorysvc "github.com/Rajvenkat512/fruits-webapp/internal/service/category"
	ordersvc "github.com/Rajvenkat512/fruits-webapp/internal/service/order"
	productsvc "github.com/Rajvenkat512/fruits-webapp/internal/service/product"
	reviewsvc "github.com/Rajvenkat512/fruits-webapp/internal/service/review"
	usersvc "github.com/Rajvenkat512/fruits-webapp/internal/service/user"
	watchlistsvc "github.com/Rajvenkat512/fruits-webapp/internal/service/watchlist"
	"github.com/Rajvenkat512/fruits-webapp/internal/telemetry"
)

const tokenPurgeInterval = time.Hour

func main() {
	config.LoadDotEnv()
	cfg := config.ServerFromEnv()
	logger := log.New(os.Stdout, "[devapi] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	gin.SetMode(gin.ReleaseMode)

	shutdownTracing, err := telemetry.Setup("devapi", cfg.Tracing, os.Stdout)
	if err != nil {
		logger.Fatalf("init tracing: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	authService := authsvc.New(userRepo, tokenrepo.NewPostgres(dbpool))

	srv, err := httpserver.New(cfg, logger, dbpool, httpserver.Deps{
		AuthSvc:      authService,
		UserSvc:      usersvc.New(userRepo),
		ProductSvc:   productsvc.New(productRepo),
		CategorySvc:  categorysvc.New(categoryrepo.NewPostgres(dbpool)),
		BannerSvc:    bannersvc.New(bannerrepo.NewPostgres(dbpool)),
		CartSvc:      cartsvc.New(cartrepo.NewPostgres(dbpool), productRepo),
		WatchlistSvc: watchlistsvc.New(watchlistrepo.NewPostgres(dbpool)),
		OrderSvc:     ordersvc.New(orderrepo.NewPostgres(dbpool), productRepo, checkout.DefaultPricing()),
		ReviewSvc:    reviewsvc.New(reviewrepo.NewPostgres(dbpool)),
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	go purgeTokens(ctx, authService, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Printf("flush traces: %v", err)
	}
}

func purgeTokens(ctx context.Context, auth *authsvc.Service, logger *log.Logger) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.PurgeExpired(ctx)
			if err != nil {
				logger.Printf("purge expired tokens: %v", err)
				continue
			}
			if n > 0 {
				logger.Printf("purged %d expired tokens", n)
			}
		}
	}
}
