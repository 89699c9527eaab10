package user

import (
	"context"
	"strings"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	userrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/user"
)

type Service struct {
	repo userrepo.Repository
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	acct, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &acct.Profile, nil
}

// Update applies the set fields of in. An email change must still look like one.
func (s *Service) Update(ctx context.Context, userID string, in domain.ProfileUpdate) (*domain.UserProfile, error) {
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !strings.Contains(email, "@") {
			return nil, domain.Invalid("a valid email is required")
		}
		in.Email = &email
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.Invalid("name cannot be empty")
	}
	return s.repo.UpdateProfile(ctx, userID, in)
}
