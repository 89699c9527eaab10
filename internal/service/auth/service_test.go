package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	tokenrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/token"
)

// memoryRepo is a lightweight in-memory user repository for tests.
type memoryRepo struct {
	byEmail map[string]domain.Account
}

type memoryTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: make(map[string]domain.Account)}
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (r *memoryTokenRepo) Create(_ context.Context, token tokenrepo.Token) error {
	if _, exists := r.tokens[token.Token]; exists {
		return domain.ErrAlreadyExists
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *memoryTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := t
	return &clone, nil
}

func (r *memoryTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tokens, token)
	return nil
}

func (r *memoryTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for k, t := range r.tokens {
		if now.After(t.ExpiresAt) {
			delete(r.tokens, k)
			n++
		}
	}
	return n, nil
}

func (r *memoryRepo) Create(_ context.Context, a domain.Account) (*domain.Account, error) {
	email := strings.ToLower(a.Profile.Email)
	if _, exists := r.byEmail[email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	clone := a
	clone.Profile.ID = "user-" + email
	r.byEmail[email] = clone
	return &clone, nil
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	if a, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]; ok {
		clone := a
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.byEmail {
		if a.Profile.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) UpdateProfile(_ context.Context, _ string, _ domain.ProfileUpdate) (*domain.UserProfile, error) {
	return nil, errors.New("not implemented")
}

func TestRegister_ReturnsUsableToken(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	resp, err := svc.Register(ctx, domain.Registration{Email: "New@Example.com", Password: "fruit42", Name: "Nia"})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if resp.Token == "" || resp.User.Email != "new@example.com" {
		t.Fatalf("unexpected response %+v", resp)
	}

	userID, err := svc.Authenticate(ctx, resp.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if userID != resp.User.ID {
		t.Fatalf("expected %s, got %s", resp.User.ID, userID)
	}
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	ctx := context.Background()
	in := domain.Registration{Email: "dup@example.com", Password: "fruit42", Name: "D"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, in); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegister_ValidatesInput(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	cases := []struct {
		name string
		in   domain.Registration
	}{
		{"bad email", domain.Registration{Email: "nope", Password: "fruit42", Name: "A"}},
		{"no name", domain.Registration{Email: "a@b.com", Password: "fruit42"}},
		{"unknown role", domain.Registration{Email: "a@b.com", Password: "fruit42", Name: "A", Role: "ROOT"}},
	}
	for _, tc := range cases {
		var v *domain.ValidationError
		if _, err := svc.Register(context.Background(), tc.in); !errors.As(err, &v) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestValidatePassword_FailsOnWeakValues(t *testing.T) {
	cases := []struct {
		name string
		pass string
	}{
		{"too short", "ab1"},
		{"no digit", "abcdefgh"},
		{"no letter", "12345678"},
	}
	for _, tc := range cases {
		if err := validatePassword(tc.pass, 6); err == nil {
			t.Fatalf("expected error for case %s", tc.name)
		}
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.Registration{Email: "user@example.com", Password: "fruit42", Name: "T"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, domain.Credentials{Email: "user@example.com", Password: "wrongpass1"}); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, domain.Credentials{Email: "missing@example.com", Password: "fruit42"}); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing user, got %v", err)
	}
	if _, err := svc.Login(ctx, domain.Credentials{Email: "USER@example.com", Password: " fruit42 "}); err != nil {
		t.Fatalf("login with trimmed password and mixed-case email: %v", err)
	}
}

func TestAuthenticate_ExpiredTokenIsDropped(t *testing.T) {
	tokens := newMemoryTokenRepo()
	svc := New(newMemoryRepo(), tokens)
	tokens.tokens["old"] = tokenrepo.Token{Token: "old", UserID: "u1", Kind: kindAccess, ExpiresAt: time.Now().Add(-time.Minute)}

	if _, err := svc.Authenticate(context.Background(), "old"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, ok := tokens.tokens["old"]; ok {
		t.Fatalf("expected expired token to be deleted")
	}
	if _, err := svc.Authenticate(context.Background(), ""); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestPurgeExpired(t *testing.T) {
	tokens := newMemoryTokenRepo()
	svc := New(newMemoryRepo(), tokens)
	tokens.tokens["a"] = tokenrepo.Token{Token: "a", ExpiresAt: time.Now().Add(-time.Hour)}
	tokens.tokens["b"] = tokenrepo.Token{Token: "b", ExpiresAt: time.Now().Add(time.Hour)}

	n, err := svc.PurgeExpired(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected 1 purged, got %d (%v)", n, err)
	}
}
