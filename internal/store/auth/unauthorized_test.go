package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authapi "github.com/Rajvenkat512/fruits-webapp/internal/api/auth"
	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/devicestore"
)

func TestUnauthorizedResponseEndsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/auth/login" {
			_, _ = w.Write([]byte(`{"token":"t1","user":{"_id":"u1","email":"a@b.c","name":"A"}}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token expired"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	storage := devicestore.NewMemory()
	client := apiclient.New(config.Client{APIURL: srv.URL, Timeout: time.Second}, storage)
	s := New(authapi.New(client), storage, nil)
	client.OnUnauthorized(s.Invalidate)

	require.NoError(t, s.Login(ctx, "a@b.c", "pw"))
	assert.Equal(t, "t1", stored(t, storage, devicestore.KeyToken))

	err := client.Get(ctx, "/profile", nil, nil)
	require.ErrorIs(t, err, apiclient.ErrUnauthorized)

	assert.False(t, s.IsAuthenticated())
	_, ok, _ := storage.Get(ctx, devicestore.KeyToken)
	assert.False(t, ok)
	_, ok, _ = storage.Get(ctx, devicestore.KeyUserID)
	assert.False(t, ok)
}

func TestFailedLoginOverRestoredSessionSignsOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	storage := devicestore.NewMemory()
	require.NoError(t, storage.Set(ctx, devicestore.KeyToken, "old"))
	require.NoError(t, storage.Set(ctx, devicestore.KeyUserID, "u1"))

	client := apiclient.New(config.Client{APIURL: srv.URL, Timeout: time.Second}, storage)
	s := New(authapi.New(client), storage, nil)
	client.OnUnauthorized(s.Invalidate)

	ok, err := s.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	require.Error(t, s.Login(ctx, "a@b.c", "wrong"))

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, Unauthenticated, s.State().Phase)
	assert.Empty(t, s.Session().Token)
	assert.Equal(t, "Invalid credentials", s.State().Err)
	_, ok, _ = storage.Get(ctx, devicestore.KeyToken)
	assert.False(t, ok)
}
