package banner

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	bannerrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/banner"
)

type Service struct {
	repo bannerrepo.Repository
}

func New(repo bannerrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the active banners in display order, never nil.
func (s *Service) List(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if banners == nil {
		banners = []domain.Banner{}
	}
	return banners, nil
}
