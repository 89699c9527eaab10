package user

import (
	"context"
	"errors"
	"testing"

	"github.com/Rajvenkat512/fruits-webapp/internal/db/dbtest"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

func TestPostgres_CreateLookupUpdate(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	repo := NewPostgres(pool, nil)

	created, err := repo.Create(ctx, domain.Account{
		Profile:      domain.UserProfile{Email: "Ann@Example.com", Name: "Ann"},
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Profile.Email != "ann@example.com" || created.Profile.Role != "USER" {
		t.Fatalf("unexpected account %+v", created.Profile)
	}

	if _, err := repo.Create(ctx, domain.Account{Profile: domain.UserProfile{Email: "ann@example.com"}, PasswordHash: "x"}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	byEmail, err := repo.GetByEmail(ctx, "ANN@example.com")
	if err != nil || byEmail.Profile.ID != created.Profile.ID {
		t.Fatalf("GetByEmail: %v %+v", err, byEmail)
	}

	city := "Pune"
	updated, err := repo.UpdateProfile(ctx, created.Profile.ID, domain.ProfileUpdate{City: &city})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.City != "Pune" || updated.Name != "Ann" {
		t.Fatalf("unexpected profile %+v", updated)
	}

	if _, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
