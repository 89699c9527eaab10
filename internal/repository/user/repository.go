package user

import (
	"context"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

// Repository persists and fetches user accounts.
type Repository interface {
	Create(ctx context.Context, a domain.Account) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id string, in domain.ProfileUpdate) (*domain.UserProfile, error)
}
