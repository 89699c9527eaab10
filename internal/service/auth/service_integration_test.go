package auth

import (
	"context"
	"testing"

	"github.com/Rajvenkat512/fruits-webapp/internal/db/dbtest"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	tokenrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/token"
	userrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/user"
)

func TestRegisterAndLogin_Integration(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Pool(t)

	svc := New(userrepo.NewPostgres(pool, nil), tokenrepo.NewPostgres(pool))

	reg, err := svc.Register(ctx, domain.Registration{Email: "integration@example.com", Password: "fruit42", Name: "Int"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.User.ID == "" || reg.Token == "" {
		t.Fatalf("expected user and token, got %+v", reg)
	}

	login, err := svc.Login(ctx, domain.Credentials{Email: "integration@example.com", Password: "fruit42"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.Token == reg.Token {
		t.Fatalf("expected a fresh token per login")
	}

	userID, err := svc.Authenticate(ctx, login.Token)
	if err != nil || userID != reg.User.ID {
		t.Fatalf("authenticate: %v (%s)", err, userID)
	}
}
