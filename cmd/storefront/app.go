package main

import (
	"errors"
	"io"
	"log"

	authapi "github.com/Rajvenkat512/fruits-webapp/internal/api/auth"
	bannerapi "github.com/Rajvenkat512/fruits-webapp/internal/api/banner"
	cartapi "github.com/Rajvenkat512/fruits-webapp/internal/api/cart"
	categoryapi "github.com/Rajvenkat512/fruits-webapp/internal/api/category"
	orderapi "github.com/Rajvenkat512/fruits-webapp/internal/api/order"
	productapi "github.com/Rajvenkat512/fruits-webapp/internal/api/product"
	reviewapi "github.com/Rajvenkat512/fruits-webapp/internal/api/review"
	userapi "github.com/Rajvenkat512/fruits-webapp/internal/api/user"
	watchlistapi "github.com/Rajvenkat512/fruits-webapp/internal/api/watchlist"
	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/catalog"
	"github.com/Rajvenkat512/fruits-webapp/internal/checkout"
	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/devicestore"
	authstore "github.com/Rajvenkat512/fruits-webapp/internal/store/auth"
	cartstore "github.com/Rajvenkat512/fruits-webapp/internal/store/cart"
	themestore "github.com/Rajvenkat512/fruits-webapp/internal/store/theme"
	userstore "github.com/Rajvenkat512/fruits-webapp/internal/store/user"
	watchliststore "github.com/Rajvenkat512/fruits-webapp/internal/store/watchlist"
)

var errNotLoggedIn = errors.New("please log in first")

// app holds the stores and services the commands act on.
type app struct {
	out    io.Writer
	logger *log.Logger

	client *apiclient.Client

	auth      *authstore.Store
	cart      *cartstore.Store
	watchlist *watchliststore.Store
	user      *userstore.Store
	theme     *themestore.Store

	products   *productapi.Service
	categories *categoryapi.Service
	banners    *bannerapi.Service
	orders     *orderapi.Service
	reviews    *reviewapi.Service

	home     *catalog.Home
	checkout *checkout.Service
}

func newApp(cfg config.Client, storage devicestore.Storage, logger *log.Logger, out io.Writer, opts ...apiclient.Option) *app {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	client := apiclient.New(cfg, storage, opts...)

	a := &app{
		out:        out,
		logger:     logger,
		client:     client,
		auth:       authstore.New(authapi.New(client), storage, logger),
		cart:       cartstore.New(cartapi.New(client)),
		watchlist:  watchliststore.New(watchlistapi.New(client)),
		user:       userstore.New(userapi.New(client)),
		theme:      themestore.New(storage, logger),
		products:   productapi.New(client),
		categories: categoryapi.New(client),
		banners:    bannerapi.New(client, logger),
		orders:     orderapi.New(client),
		reviews:    reviewapi.New(client),
	}
	a.home = catalog.NewHome(a.banners, a.categories, a.products)
	a.checkout = checkout.NewService(a.cart, a.orders, checkout.DefaultPricing(), logger)

	client.OnUnauthorized(func() {
		a.auth.Invalidate()
		a.cart.Reset()
		a.watchlist.Reset()
		a.user.Reset()
	})
	return a
}

func (a *app) requireSession() error {
	if !a.auth.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}
