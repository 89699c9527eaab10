package banner

import (
	"context"
	"errors"
	"testing"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type stubRepo struct {
	banners []domain.Banner
	err     error
}

func (s *stubRepo) ListActive(_ context.Context) ([]domain.Banner, error) {
	return s.banners, s.err
}

func (s *stubRepo) Upsert(_ context.Context, b domain.Banner) (*domain.Banner, error) {
	return &b, nil
}

func TestList_EmptyIsNotNil(t *testing.T) {
	got, err := New(&stubRepo{}).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestList_PassesThroughErrors(t *testing.T) {
	boom := errors.New("boom")
	if _, err := New(&stubRepo{err: boom}).List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
