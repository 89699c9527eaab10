// Package auth registers users, checks passwords and issues bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	tokenrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/token"
	userrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Roles accepted at registration.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Service handles register/login flows.
type Service struct {
	users       userrepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(users userrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		users:       users,
		tokens:      newTokenManager(tokens),
		accessTTL:   7 * 24 * time.Hour,
		passwordMin: 6,
	}
}

// Register creates the account and signs it in.
func (s *Service) Register(ctx context.Context, in domain.Registration) (*domain.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !strings.Contains(email, "@") {
		return nil, domain.Invalid("a valid email is required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	password := strings.TrimSpace(in.Password)
	if err := validatePassword(password, s.passwordMin); err != nil {
		return nil, err
	}
	role := strings.ToUpper(strings.TrimSpace(in.Role))
	switch role {
	case "":
		role = RoleUser
	case RoleUser, RoleAdmin:
	default:
		return nil, domain.Invalid("unknown role %q", in.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acct, err := s.users.Create(ctx, domain.Account{
		Profile:      domain.UserProfile{Email: email, Name: name, Role: role},
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("email %s: %w", email, domain.ErrAlreadyExists)
		}
		return nil, err
	}
	return s.issue(ctx, acct.Profile, "User registered successfully")
}

// Login validates credentials and returns an access token plus the user.
func (s *Service) Login(ctx context.Context, in domain.Credentials) (*domain.AuthResponse, error) {
	password := strings.TrimSpace(in.Password)
	acct, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, acct.Profile, "Login successful")
}

// Authenticate returns the user id bound to a valid access token.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return "", ErrInvalidToken
	}
	if _, err := s.users.GetByID(ctx, meta.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	return meta.UserID, nil
}

// PurgeExpired drops tokens past their expiry.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.tokens.Purge(ctx, time.Now())
}

func (s *Service) issue(ctx context.Context, p domain.UserProfile, msg string) (*domain.AuthResponse, error) {
	token, err := s.tokens.Issue(ctx, p.ID, kindAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponse{
		Token:   token,
		User:    domain.UserSummary{ID: p.ID, Email: p.Email, Name: p.Name},
		Message: msg,
	}, nil
}

func validatePassword(p string, min int) error {
	if len(p) < min {
		return domain.Invalid("password must be at least %d characters", min)
	}
	hasLetter := false
	hasDigit := false
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return domain.Invalid("password must contain at least 1 letter and 1 number")
	}
	return nil
}
