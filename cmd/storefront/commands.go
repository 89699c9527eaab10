package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rajvenkat512/fruits-webapp/internal/carousel"
	"github.com/Rajvenkat512/fruits-webapp/internal/checkout"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	themestore "github.com/Rajvenkat512/fruits-webapp/internal/store/theme"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the fruit shop, manage your cart and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := a.auth.Restore(ctx); err != nil {
				return err
			}
			if err := a.theme.Load(ctx); err != nil {
				a.logger.Printf("theme: %v", err)
			}
			return nil
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.out)

	root.AddCommand(
		loginCmd(a),
		registerCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		homeCmd(a),
		productsCmd(a),
		productCmd(a),
		categoriesCmd(a),
		categoryCmd(a),
		cartCmd(a),
		wishlistCmd(a),
		checkoutCmd(a),
		ordersCmd(a),
		orderCmd(a),
		profileCmd(a),
		reviewCmd(a),
		bannersCmd(a),
		themeCmd(a),
	)
	return root
}

// run executes the command line in args and prints any error.
func run(ctx context.Context, a *app, args ...string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return err
}

// storeError prefers the message a store recorded over the raw error.
func storeError(msg string, err error) error {
	if err == nil {
		return nil
	}
	if msg != "" {
		return errors.New(msg)
	}
	return err
}

func loginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.Login(cmd.Context(), strings.TrimSpace(args[0]), args[1]); err != nil {
				return storeError(a.auth.State().Err, err)
			}
			s := a.auth.Session()
			fmt.Fprintf(a.out, "Welcome back, %s\n", s.User.Name)
			return nil
		},
	}
}

func registerCmd(a *app) *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "register <email> <password> <name>",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.Register(cmd.Context(), strings.TrimSpace(args[0]), args[1], args[2], role); err != nil {
				return storeError(a.auth.State().Err, err)
			}
			fmt.Fprintf(a.out, "Account created for %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "Account role (USER or ADMIN)")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.auth.Logout(cmd.Context())
			a.cart.Reset()
			a.watchlist.Reset()
			a.user.Reset()
			fmt.Fprintln(a.out, "Signed out")
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if err := a.user.Fetch(cmd.Context()); err != nil {
				return storeError(a.user.State().Err, err)
			}
			p, _ := a.user.Profile()
			fmt.Fprintf(a.out, "%s <%s>\n", p.Name, p.Email)
			return nil
		},
	}
}

func homeCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show banners, categories and featured products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.home.Limit = limit
			feed, err := a.home.Load(cmd.Context())
			if err != nil {
				return err
			}
			renderHome(a.out, feed, a.theme.Palette())
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 8, "Number of featured products")
	return cmd
}

func productsCmd(a *app) *cobra.Command {
	var q domain.ProductQuery
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List or search products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := a.products.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			renderProducts(a.out, products)
			return nil
		},
	}
	cmd.Flags().StringVar(&q.CategoryID, "category", "", "Only products in this category id")
	cmd.Flags().StringVar(&q.Search, "search", "", "Search term")
	cmd.Flags().IntVar(&q.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "Page size")
	return cmd
}

func productCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.products.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			reviews, err := a.reviews.ListByProduct(cmd.Context(), p.ID)
			if err != nil {
				a.logger.Printf("reviews for %s: %v", p.ID, err)
			}
			renderProduct(a.out, p, reviews)
			return nil
		},
	}
}

func categoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := a.categories.List(cmd.Context())
			if err != nil {
				return err
			}
			renderCategories(a.out, cats)
			return nil
		},
	}
}

func categoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category <id>",
		Short: "List the products of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.categories.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			products, err := a.home.CategoryProducts(cmd.Context(), c.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s\n", c.Name)
			renderProducts(a.out, products)
			return nil
		},
	}
}

func cartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := fetchCart(a, cmd.Context()); err != nil {
				return err
			}
			renderCart(a.out, a.cart.Items(), a.cart.TotalItems(), a.cart.TotalPrice())
			return nil
		},
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if err := a.cart.Add(cmd.Context(), args[0], qty); err != nil {
				return storeError(a.cart.State().Err, err)
			}
			fmt.Fprintln(a.out, "Added to cart")
			return nil
		},
	}
	add.Flags().IntVarP(&qty, "quantity", "q", 1, "Quantity to add")

	step := func(use, short string, fn func(context.Context, string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <item-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := fetchCart(a, cmd.Context()); err != nil {
					return err
				}
				if err := fn(cmd.Context(), args[0]); err != nil {
					return storeError(a.cart.State().Err, err)
				}
				renderCart(a.out, a.cart.Items(), a.cart.TotalItems(), a.cart.TotalPrice())
				return nil
			},
		}
	}

	set := &cobra.Command{
		Use:   "set <item-id> <quantity>",
		Short: "Set the quantity of a line; zero removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if err := fetchCart(a, cmd.Context()); err != nil {
				return err
			}
			if err := a.cart.UpdateQuantity(cmd.Context(), args[0], n); err != nil {
				return storeError(a.cart.State().Err, err)
			}
			renderCart(a.out, a.cart.Items(), a.cart.TotalItems(), a.cart.TotalPrice())
			return nil
		},
	}

	cmd.AddCommand(
		add,
		set,
		step("inc", "Add one unit to a line", a.cart.Increment),
		step("dec", "Remove one unit from a line", a.cart.Decrement),
		step("rm", "Remove a line", a.cart.Remove),
	)
	return cmd
}

func fetchCart(a *app, ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if err := a.cart.Fetch(ctx); err != nil {
		return storeError(a.cart.State().Err, err)
	}
	return nil
}

func wishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show the wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := fetchWishlist(a, cmd.Context()); err != nil {
				return err
			}
			renderWishlist(a.out, a.watchlist.State().Items)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <product-id>",
		Short: "Add a product to the wishlist, or remove it if already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fetchWishlist(a, cmd.Context()); err != nil {
				return err
			}
			added, err := a.watchlist.Toggle(cmd.Context(), args[0])
			if err != nil {
				return storeError(a.watchlist.State().Err, err)
			}
			if added {
				fmt.Fprintln(a.out, "Added to wishlist")
			} else {
				fmt.Fprintln(a.out, "Removed from wishlist")
			}
			return nil
		},
	})
	return cmd
}

func fetchWishlist(a *app, ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if err := a.watchlist.Fetch(ctx); err != nil {
		return storeError(a.watchlist.State().Err, err)
	}
	return nil
}

func checkoutCmd(a *app) *cobra.Command {
	var (
		req     checkout.Request
		dryRun  bool
		country string
	)
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Review the order summary and place the order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := fetchCart(a, ctx); err != nil {
				return err
			}
			if len(a.cart.Items()) == 0 {
				return errors.New(checkout.ErrorMessage(checkout.ErrEmptyCart))
			}
			renderSummary(a.out, a.checkout.Summary(req.Code))
			if dryRun {
				return nil
			}

			if err := a.user.Fetch(ctx); err != nil {
				a.logger.Printf("checkout: profile for address defaults: %v", err)
			}
			req.ShippingAddress.Country = country
			fillAddress(&req.ShippingAddress, cmd, a)

			res, err := a.checkout.PlaceOrder(ctx, req)
			if err != nil {
				return errors.New(checkout.ErrorMessage(err))
			}
			fmt.Fprintf(a.out, "Order %s placed, total %s (%s)\n", res.Order.ID, money(res.Order.Total), res.Order.Status)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Code, "code", checkout.DefaultPromoCode, "Promo code")
	f.StringVar(&req.PaymentMethod, "payment", domain.PaymentCashOnDelivery, "Payment method: CASH_ON_DELIVERY, CARD or PAYPAL")
	f.StringVar(&req.ShippingAddress.Name, "name", "", "Recipient name (defaults to profile)")
	f.StringVar(&req.ShippingAddress.Street, "street", "", "Street (defaults to profile address)")
	f.StringVar(&req.ShippingAddress.City, "city", "", "City (defaults to profile)")
	f.StringVar(&req.ShippingAddress.State, "state", "", "State (defaults to profile)")
	f.StringVar(&req.ShippingAddress.Zip, "zip", "", "Postal code (defaults to profile)")
	f.StringVar(&req.ShippingAddress.Phone, "phone", "", "Phone (defaults to profile)")
	f.StringVar(&country, "country", "", "Country")
	f.BoolVar(&dryRun, "dry-run", false, "Only print the summary")
	return cmd
}

// fillAddress copies profile fields into address fields the user left unset.
func fillAddress(addr *domain.ShippingAddress, cmd *cobra.Command, a *app) {
	p, ok := a.user.Profile()
	if !ok {
		return
	}
	defaults := []struct {
		flag  string
		dst   *string
		value string
	}{
		{"name", &addr.Name, p.Name},
		{"street", &addr.Street, p.Address},
		{"city", &addr.City, p.City},
		{"state", &addr.State, p.State},
		{"zip", &addr.Zip, p.ZipCode},
		{"phone", &addr.Phone, p.Phone},
	}
	for _, d := range defaults {
		if !cmd.Flags().Changed(d.flag) {
			*d.dst = d.value
		}
	}
}

func ordersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			orders, err := a.orders.List(cmd.Context())
			if err != nil {
				return err
			}
			renderOrders(a.out, orders)
			return nil
		},
	}
}

func orderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			o, err := a.orders.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderOrder(a.out, o)
			return nil
		},
	}
}

func profileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if err := a.user.Fetch(cmd.Context()); err != nil {
				return storeError(a.user.State().Err, err)
			}
			p, _ := a.user.Profile()
			renderProfile(a.out, p)
			return nil
		},
	}

	fields := []string{"name", "email", "phone", "address", "city", "state", "zip", "avatar"}
	values := make(map[string]*string, len(fields))
	update := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			var in domain.ProfileUpdate
			targets := map[string]**string{
				"name": &in.Name, "email": &in.Email, "phone": &in.Phone, "address": &in.Address,
				"city": &in.City, "state": &in.State, "zip": &in.ZipCode, "avatar": &in.Avatar,
			}
			changed := 0
			for _, f := range fields {
				if cmd.Flags().Changed(f) {
					*targets[f] = values[f]
					changed++
				}
			}
			if changed == 0 {
				return errors.New("nothing to update")
			}
			if err := a.user.Update(cmd.Context(), in); err != nil {
				return storeError(a.user.State().Err, err)
			}
			p, _ := a.user.Profile()
			renderProfile(a.out, p)
			return nil
		},
	}
	for _, f := range fields {
		values[f] = update.Flags().String(f, "", "New "+f)
	}
	cmd.AddCommand(update)
	return cmd
}

func reviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Product reviews",
	}
	var in domain.ReviewInput
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Review a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			in.ProductID = args[0]
			r, err := a.reviews.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Thanks! You rated it %d/5\n", r.Rating)
			return nil
		},
	}
	add.Flags().IntVar(&in.Rating, "rating", 5, "Rating from 1 to 5")
	add.Flags().StringVar(&in.Comment, "comment", "", "Comment")
	cmd.AddCommand(add)
	return cmd
}

func bannersCmd(a *app) *cobra.Command {
	var play time.Duration
	cmd := &cobra.Command{
		Use:   "banners",
		Short: "Show promotional banners, optionally cycling through them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			banners := a.banners.List(cmd.Context())
			if len(banners) == 0 {
				fmt.Fprintln(a.out, "No banners")
				return nil
			}
			if play <= 0 {
				for i, b := range banners {
					renderBanner(a.out, i, b)
				}
				return nil
			}

			c := carousel.New(len(banners),
				carousel.WithScroller(&bannerScroller{out: a.out, banners: banners}),
				carousel.WithLogger(a.logger),
			)
			renderBanner(a.out, 0, banners[0])
			ctx, cancel := context.WithTimeout(cmd.Context(), play)
			defer cancel()
			if err := c.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&play, "play", 0, "Cycle through banners for this long")
	return cmd
}

func themeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				var err error
				switch args[0] {
				case "toggle":
					_, err = a.theme.Toggle(ctx)
				case string(themestore.Light), string(themestore.Dark):
					err = a.theme.SetMode(ctx, themestore.Mode(args[0]))
				default:
					return fmt.Errorf("unknown theme %q", args[0])
				}
				if err != nil {
					return err
				}
			}
			p := a.theme.Palette()
			fmt.Fprintf(a.out, "Theme: %s (background %s, primary %s)\n", a.theme.Mode(), p.Bg, p.Primary)
			return nil
		},
	}
}
