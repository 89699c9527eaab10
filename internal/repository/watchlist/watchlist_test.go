package watchlist

import (
	"context"
	"testing"

	"github.com/Rajvenkat512/fruits-webapp/internal/db/dbtest"
)

func TestPostgres_AddIsIdempotent(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	userID := dbtest.InsertUser(t, pool, "wish@example.com")
	productID := dbtest.InsertProduct(t, pool, "dragonfruit", 499, 3)
	repo := NewPostgres(pool)

	a, err := repo.Add(ctx, userID, productID)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, err := repo.Add(ctx, userID, productID)
	if err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if a.ID != b.ID {
		t.Fatalf("expected same entry, got %s and %s", a.ID, b.ID)
	}

	items, err := repo.ListByUser(ctx, userID)
	if err != nil || len(items) != 1 || items[0].Product.Name != "dragonfruit" {
		t.Fatalf("unexpected list %v %+v", err, items)
	}

	if err := repo.Remove(ctx, userID, a.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
}
