// Package user wraps the profile endpoints.
package user

import (
	"context"
	"net/url"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Put(ctx context.Context, path string, body, out any) error
}

type Service struct {
	api requester
}

func New(api requester) *Service {
	return &Service{api: api}
}

func (s *Service) Profile(ctx context.Context) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := s.api.Get(ctx, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := s.api.Put(ctx, "/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
