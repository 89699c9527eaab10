package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	tokenrepo "github.com/Rajvenkat512/fruits-webapp/internal/repository/token"
)

const kindAccess = "access"

type tokenManager struct {
	repo tokenrepo.Repository
}

func newTokenManager(repo tokenrepo.Repository) *tokenManager {
	return &tokenManager{repo: repo}
}

func (m *tokenManager) Issue(ctx context.Context, userID, kind string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for range 5 {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, tokenrepo.Token{
			Token:     token,
			UserID:    userID,
			Kind:      kind,
			ExpiresAt: expiresAt,
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

func (m *tokenManager) Validate(ctx context.Context, token string) (tokenrepo.Token, bool) {
	if token == "" {
		return tokenrepo.Token{}, false
	}
	meta, err := m.repo.Get(ctx, token)
	if err != nil {
		return tokenrepo.Token{}, false
	}
	if meta.Kind != kindAccess || meta.UserID == "" {
		return tokenrepo.Token{}, false
	}
	if time.Now().After(meta.ExpiresAt) {
		_ = m.repo.Delete(ctx, token)
		return tokenrepo.Token{}, false
	}
	return *meta, true
}

func (m *tokenManager) Purge(ctx context.Context, now time.Time) (int64, error) {
	return m.repo.DeleteExpired(ctx, now)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
