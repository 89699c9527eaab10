package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Rajvenkat512/fruits-webapp/internal/catalog"
	"github.com/Rajvenkat512/fruits-webapp/internal/checkout"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	themestore "github.com/Rajvenkat512/fruits-webapp/internal/store/theme"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func renderHome(out io.Writer, feed *catalog.Feed, p themestore.Palette) {
	fmt.Fprintf(out, "Fresh Fruits  [%s]\n\n", p.Primary)
	for i, b := range feed.Banners {
		renderBanner(out, i, b)
	}
	if len(feed.Banners) > 0 {
		fmt.Fprintln(out)
	}
	names := make([]string, 0, len(feed.Categories))
	for _, c := range feed.Categories {
		names = append(names, c.Name)
	}
	fmt.Fprintf(out, "Categories: %s\n\n", strings.Join(names, ", "))
	renderProducts(out, feed.Products)
}

func renderBanner(out io.Writer, i int, b domain.Banner) {
	if b.Description != "" {
		fmt.Fprintf(out, "[%d] %s - %s\n", i+1, b.Title, b.Description)
		return
	}
	fmt.Fprintf(out, "[%d] %s\n", i+1, b.Title)
}

// bannerScroller prints the banner the carousel moves to.
type bannerScroller struct {
	out     io.Writer
	banners []domain.Banner
}

func (s *bannerScroller) ScrollToIndex(i int) error {
	if i < 0 || i >= len(s.banners) {
		return fmt.Errorf("banner %d out of range", i)
	}
	renderBanner(s.out, i, s.banners[i])
	return nil
}

func (s *bannerScroller) ScrollToOffset(offset float64) error {
	fmt.Fprintf(s.out, "(scrolled to %.0fpx)\n", offset)
	return nil
}

func renderProducts(out io.Writer, products []domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(out, "No products found")
		return
	}
	w := table(out)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.ID, p.Name, money(p.Price), p.Stock)
	}
	w.Flush()
}

func renderProduct(out io.Writer, p *domain.Product, reviews []domain.Review) {
	fmt.Fprintf(out, "%s  %s\n", p.Name, money(p.Price))
	if p.Category != nil && p.Category.Name != "" {
		fmt.Fprintf(out, "Category: %s\n", p.Category.Name)
	}
	if p.Stock > 0 {
		fmt.Fprintf(out, "In stock: %d\n", p.Stock)
	} else {
		fmt.Fprintln(out, "Out of stock")
	}
	if p.Description != "" {
		fmt.Fprintf(out, "\n%s\n", p.Description)
	}
	if len(reviews) == 0 {
		return
	}
	fmt.Fprintf(out, "\nReviews (%d)\n", len(reviews))
	for _, r := range reviews {
		fmt.Fprintf(out, "  %s %s\n", strings.Repeat("*", r.Rating), r.Comment)
	}
}

func renderCategories(out io.Writer, cats []domain.Category) {
	w := table(out)
	fmt.Fprintln(w, "ID\tNAME\tSLUG")
	for _, c := range cats {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Slug)
	}
	w.Flush()
}

func snapshotName(p *domain.ProductSnapshot, fallback string) string {
	if p == nil || p.Name == "" {
		return fallback
	}
	return p.Name
}

func renderCart(out io.Writer, items []domain.CartItem, count int, total decimal.Decimal) {
	if len(items) == 0 {
		fmt.Fprintln(out, "Your cart is empty")
		return
	}
	w := table(out)
	fmt.Fprintln(w, "ITEM\tPRODUCT\tQTY\tLINE TOTAL")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", it.ID, snapshotName(it.Product, it.ProductID), it.Quantity, money(it.LineTotal()))
	}
	w.Flush()
	fmt.Fprintf(out, "%d items, total %s\n", count, money(total))
}

func renderWishlist(out io.Writer, items []domain.WatchlistItem) {
	if len(items) == 0 {
		fmt.Fprintln(out, "Your wishlist is empty")
		return
	}
	w := table(out)
	fmt.Fprintln(w, "ITEM\tPRODUCT\tPRICE")
	for _, it := range items {
		price := "-"
		if it.Product != nil {
			price = money(it.Product.Price)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", it.ID, snapshotName(it.Product, it.ProductID), price)
	}
	w.Flush()
}

func renderSummary(out io.Writer, s checkout.Summary) {
	w := table(out)
	fmt.Fprintf(w, "Subtotal\t%s\n", money(s.Subtotal))
	if s.Code != "" {
		fmt.Fprintf(w, "Discount (%s)\t-%s\n", s.Code, money(s.Discount))
	}
	fmt.Fprintf(w, "Delivery\t%s\n", money(s.Delivery))
	fmt.Fprintf(w, "Tax\t%s\n", money(s.Tax))
	fmt.Fprintf(w, "Total\t%s\n", money(s.Total))
	w.Flush()
}

func renderOrders(out io.Writer, orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No orders yet")
		return
	}
	w := table(out)
	fmt.Fprintln(w, "ID\tSTATUS\tTOTAL\tPLACED")
	for _, o := range orders {
		placed := "-"
		if !o.CreatedAt.IsZero() {
			placed = o.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Status, money(o.Total), placed)
	}
	w.Flush()
}

func renderOrder(out io.Writer, o *domain.OrderDetail) {
	fmt.Fprintf(out, "Order %s  %s  %s\n", o.ID, o.Status, money(o.Total))
	w := table(out)
	for _, l := range o.Items {
		name := l.Product.Name
		if name == "" {
			name = l.ProductID
		}
		fmt.Fprintf(w, "  %s\tx%d\t%s\n", name, l.Quantity, money(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))))
	}
	w.Flush()
	for _, a := range o.ShippingAddress {
		fmt.Fprintf(out, "Ship to: %s, %s, %s\n", a.Name, a.Street, a.City)
	}
	for _, p := range o.Payments {
		fmt.Fprintf(out, "Payment: %s %s (%s)\n", p.Method, money(p.Amount), p.Status)
	}
}

func renderProfile(out io.Writer, p domain.UserProfile) {
	w := table(out)
	fmt.Fprintf(w, "Name\t%s\n", p.Name)
	fmt.Fprintf(w, "Email\t%s\n", p.Email)
	for _, f := range []struct{ label, value string }{
		{"Phone", p.Phone},
		{"Address", p.Address},
		{"City", p.City},
		{"State", p.State},
		{"Zip", p.ZipCode},
	} {
		if f.value != "" {
			fmt.Fprintf(w, "%s\t%s\n", f.label, f.value)
		}
	}
	w.Flush()
}
