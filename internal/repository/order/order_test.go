package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Rajvenkat512/fruits-webapp/internal/db/dbtest"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

func TestPostgres_CreateReservesStockAndClearsCart(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	userID := dbtest.InsertUser(t, pool, "buyer@example.com")
	productID := dbtest.InsertProduct(t, pool, "mango", 300, 4)

	if _, err := pool.Exec(ctx, `INSERT INTO cart_items (user_id, product_id, quantity) VALUES ($1::uuid, $2::uuid, 2)`, userID, productID); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	repo := NewPostgres(pool)
	got, err := repo.Create(ctx, NewOrder{
		UserID:          userID,
		Lines:           []Line{{ProductID: productID, Name: "mango", Price: domain.Cents(300), Quantity: 2}},
		Total:           decimal.RequireFromString("14.00"),
		ShippingAddress: domain.ShippingAddress{Name: "A", City: "Pune"},
		PaymentMethod:   domain.PaymentCashOnDelivery,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Status != domain.OrderStatusPending || got.Total.StringFixed(2) != "14.00" {
		t.Fatalf("unexpected order %+v", got.Order)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 || got.Items[0].Product.Name != "mango" {
		t.Fatalf("unexpected lines %+v", got.Items)
	}
	if len(got.Payments) != 1 || got.Payments[0].Method != domain.PaymentCashOnDelivery {
		t.Fatalf("unexpected payments %+v", got.Payments)
	}
	if len(got.ShippingAddress) != 1 || got.ShippingAddress[0].City != "Pune" {
		t.Fatalf("unexpected address %+v", got.ShippingAddress)
	}
	if got.CouponID != nil {
		t.Fatalf("expected no coupon, got %v", *got.CouponID)
	}

	var stock, cartLines int
	if err := pool.QueryRow(ctx, `SELECT stock FROM products WHERE id::text = $1`, productID).Scan(&stock); err != nil || stock != 2 {
		t.Fatalf("expected stock 2, got %d (%v)", stock, err)
	}
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM cart_items`).Scan(&cartLines); err != nil || cartLines != 0 {
		t.Fatalf("expected empty cart, got %d (%v)", cartLines, err)
	}

	list, err := repo.ListByUser(ctx, userID)
	if err != nil || len(list) != 1 || list[0].ID != got.ID {
		t.Fatalf("ListByUser: %v %+v", err, list)
	}
}

func TestPostgres_CreateRollsBackOnShortStock(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	userID := dbtest.InsertUser(t, pool, "buyer@example.com")
	productID := dbtest.InsertProduct(t, pool, "kiwi", 100, 1)

	_, err := NewPostgres(pool).Create(ctx, NewOrder{
		UserID:        userID,
		Lines:         []Line{{ProductID: productID, Name: "kiwi", Price: domain.Cents(100), Quantity: 3}},
		Total:         decimal.RequireFromString("11.00"),
		PaymentMethod: domain.PaymentCard,
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	var orders int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&orders); err != nil || orders != 0 {
		t.Fatalf("expected no orders, got %d (%v)", orders, err)
	}
}

func TestPostgres_GetByIDScopedToUser(t *testing.T) {
	pool := dbtest.Pool(t)
	_, err := NewPostgres(pool).GetByID(context.Background(), dbtest.InsertUser(t, pool, "x@example.com"), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
