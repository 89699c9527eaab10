// Package auth wraps the session endpoints.
package auth

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

type poster interface {
	Post(ctx context.Context, path string, body, out any) error
}

type Service struct {
	api poster
}

func New(api poster) *Service {
	return &Service{api: api}
}

func (s *Service) Login(ctx context.Context, in domain.Credentials) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := s.api.Post(ctx, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. The backend does not open a session here, so
// the returned token is usually empty.
func (s *Service) Register(ctx context.Context, in domain.Registration) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := s.api.Post(ctx, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
