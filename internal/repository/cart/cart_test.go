package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Rajvenkat512/fruits-webapp/internal/db/dbtest"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

func TestPostgres_AddMergesAndRemoves(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	userID := dbtest.InsertUser(t, pool, "cart@example.com")
	productID := dbtest.InsertProduct(t, pool, "lychee", 250, 5)
	repo := NewPostgres(pool)

	first, err := repo.Add(ctx, userID, productID, 2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := repo.Add(ctx, userID, productID, 3)
	if err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if first.ID != second.ID || second.Quantity != 5 {
		t.Fatalf("expected merged line, got %+v then %+v", first, second)
	}
	if second.Product == nil || second.Product.Price.StringFixed(2) != "2.50" {
		t.Fatalf("expected snapshot price, got %+v", second.Product)
	}

	updated, err := repo.UpdateQuantity(ctx, userID, second.ID, 1)
	if err != nil || updated.Quantity != 1 {
		t.Fatalf("UpdateQuantity: %v %+v", err, updated)
	}

	other := dbtest.InsertUser(t, pool, "other@example.com")
	if err := repo.Remove(ctx, other, second.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected other user to miss the line, got %v", err)
	}
	if err := repo.Remove(ctx, userID, second.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	items, err := repo.ListByUser(ctx, userID)
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty cart, got %v %+v", err, items)
	}
}

func TestPostgres_AddUnknownProduct(t *testing.T) {
	pool := dbtest.Pool(t)
	userID := dbtest.InsertUser(t, pool, "cart@example.com")
	_, err := NewPostgres(pool).Add(context.Background(), userID, "00000000-0000-0000-0000-000000000000", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_ConcurrentFirstAddsMerge(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	userID := dbtest.InsertUser(t, pool, "race@example.com")
	productID := dbtest.InsertProduct(t, pool, "mango", 300, 10)
	repo := NewPostgres(pool)

	const adders = 4
	var wg sync.WaitGroup
	errs := make(chan error, adders)
	for i := 0; i < adders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Add(ctx, userID, productID, 1); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Add: %v", err)
	}

	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != adders {
		t.Fatalf("expected one line with quantity %d, got %+v", adders, items)
	}
}

func TestPostgres_MalformedIDsAreNotFound(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	userID := dbtest.InsertUser(t, pool, "malformed@example.com")
	repo := NewPostgres(pool)

	if _, err := repo.Get(ctx, userID, "not-a-uuid"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get: expected ErrNotFound, got %v", err)
	}
	if err := repo.Remove(ctx, userID, "not-a-uuid"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Remove: expected ErrNotFound, got %v", err)
	}
	items, err := repo.ListByUser(ctx, "nope")
	if err != nil || len(items) != 0 {
		t.Fatalf("ListByUser: expected empty, got %v %+v", err, items)
	}
}
