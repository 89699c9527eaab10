package category

import (
	"context"
	"errors"
	"testing"

	"github.com/Rajvenkat512/fruits-webapp/internal/db/dbtest"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

func TestPostgres_CRUD(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	repo := NewPostgres(pool)

	citrus, err := repo.Create(ctx, domain.CategoryInput{Name: "Citrus", Slug: "citrus"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, domain.CategoryInput{Name: "Citrus 2", Slug: "citrus"}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if _, err := repo.Create(ctx, domain.CategoryInput{Name: "Berries", Slug: "berries"}); err != nil {
		t.Fatalf("Create berries: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Berries" {
		t.Fatalf("expected name ordering, got %+v", list)
	}

	desc := "Sour and bright"
	updated, err := repo.Update(ctx, citrus.ID, domain.CategoryUpdate{Description: &desc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != desc || updated.Name != "Citrus" {
		t.Fatalf("unexpected update %+v", updated)
	}

	upserted, err := repo.UpsertBySlug(ctx, domain.CategoryInput{Name: "Citrus Fruits", Slug: "citrus"})
	if err != nil {
		t.Fatalf("UpsertBySlug: %v", err)
	}
	if upserted.ID != citrus.ID || upserted.Name != "Citrus Fruits" {
		t.Fatalf("upsert should keep id, got %+v", upserted)
	}

	if err := repo.Delete(ctx, citrus.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, citrus.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
