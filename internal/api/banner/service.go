// Package banner wraps the promotional banner endpoint.
package banner

import (
	"context"
	"io"
	"log"
	"net/url"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type getter interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

type Service struct {
	api    getter
	logger *log.Logger
}

func New(api getter, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{api: api, logger: logger}
}

// List returns the banners. Banners are decoration, so a failed fetch is
// logged and yields an empty list rather than an error.
func (s *Service) List(ctx context.Context) []domain.Banner {
	var out []domain.Banner
	if err := s.api.Get(ctx, "/admin/banners", nil, &out); err != nil {
		s.logger.Printf("banner service: list error=%v", err)
		return []domain.Banner{}
	}
	return out
}
