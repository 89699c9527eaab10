// Package dbtest provides a migrated, empty Postgres pool for integration
// tests. Tests are skipped unless TEST_DB_DSN is set.
package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajvenkat512/fruits-webapp/internal/migrate"
)

// Pool connects to TEST_DB_DSN, applies migrations and truncates every table.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `
TRUNCATE payments, order_items, orders, watchlist_items, cart_items, reviews,
         banners, products, categories, tokens, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}

// InsertUser creates a bare user row and returns its id.
func InsertUser(t *testing.T, pool *pgxpool.Pool, email string) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash, name) VALUES ($1, 'x', 'Test') RETURNING id::text`, email).Scan(&id)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return id
}

// InsertProduct creates a product row and returns its id.
func InsertProduct(t *testing.T, pool *pgxpool.Pool, slug string, priceCents int64, stock int) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(),
		`INSERT INTO products (name, slug, price_cents, stock) VALUES ($1, $1, $2, $3) RETURNING id::text`,
		slug, priceCents, stock).Scan(&id)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return id
}
