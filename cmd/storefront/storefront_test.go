package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/devicestore"
)

// fakeAPI is a minimal in-memory backend for one signed in shopper.
type fakeAPI struct {
	mu      sync.Mutex
	qty     int
	deleted []string
	orders  int
	expired bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			expired := f.expired
			f.mu.Unlock()
			if expired || r.Header.Get("Authorization") != "Bearer tok" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid or expired token"})
				return
			}
			next(w, r)
		}
	}
	cartItem := func() map[string]any {
		return map[string]any{
			"id": "c1", "productId": "p1", "quantity": f.qty,
			"product": map[string]any{"id": "p1", "name": "Strawberries", "price": 2.5},
		}
	}

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "password123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "tok",
			"user":  map[string]string{"id": "u1", "email": in.Email, "name": "Demo User"},
		})
	})
	mux.HandleFunc("GET /api/v1/cart", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.qty == 0 {
			writeJSON(w, http.StatusOK, []any{})
			return
		}
		writeJSON(w, http.StatusOK, []any{cartItem()})
	}))
	mux.HandleFunc("DELETE /api/v1/cart/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.deleted = append(f.deleted, r.PathValue("id"))
		f.qty = 0
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
	}))
	mux.HandleFunc("GET /api/v1/profile", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id": "u1", "name": "Demo User", "email": "user@example.com",
			"address": "1 Orchard Lane", "city": "Springfield",
		})
	}))
	mux.HandleFunc("POST /api/v1/orders", authed(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			ShippingAddress struct{ Name, Street, City string } `json:"shippingAddress"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.ShippingAddress.Street != "1 Orchard Lane" || in.ShippingAddress.City != "Springfield" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "shipping address is incomplete"})
			return
		}
		f.mu.Lock()
		f.orders++
		f.qty = 0
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"id": "o1", "status": "PENDING", "total": 10.8})
	}))
	return mux
}

func newTestApp(t *testing.T, api *fakeAPI) (*app, devicestore.Storage, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	storage := devicestore.NewMemory()
	var out bytes.Buffer
	cfg := config.Client{APIURL: srv.URL, APIBasePath: "/api/v1", Timeout: 2 * time.Second}
	return newApp(cfg, storage, nil, &out), storage, &out
}

func login(t *testing.T, a *app) {
	t.Helper()
	require.NoError(t, run(context.Background(), a, "login", "user@example.com", "password123"))
}

func TestLoginPersistsSession(t *testing.T) {
	a, storage, out := newTestApp(t, &fakeAPI{})
	login(t, a)

	assert.Contains(t, out.String(), "Welcome back, Demo User")
	token, ok, err := storage.Get(context.Background(), devicestore.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	a, storage, out := newTestApp(t, &fakeAPI{})
	err := run(context.Background(), a, "login", "user@example.com", "nope")
	require.Error(t, err)
	assert.Contains(t, out.String(), "Invalid credentials")

	_, ok, _ := storage.Get(context.Background(), devicestore.KeyToken)
	assert.False(t, ok)
}

func TestCartRequiresSession(t *testing.T) {
	a, _, _ := newTestApp(t, &fakeAPI{})
	err := run(context.Background(), a, "cart")
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestSessionIsRestoredFromDevice(t *testing.T) {
	api := &fakeAPI{qty: 2}
	a, storage, _ := newTestApp(t, api)
	ctx := context.Background()
	require.NoError(t, storage.Set(ctx, devicestore.KeyToken, "tok"))
	require.NoError(t, storage.Set(ctx, devicestore.KeyUserID, "u1"))

	require.NoError(t, run(ctx, a, "cart"))
	assert.Equal(t, 2, a.cart.TotalItems())
}

func TestCartDecrementAtOneRemovesLine(t *testing.T) {
	api := &fakeAPI{qty: 1}
	a, _, out := newTestApp(t, api)
	login(t, a)

	require.NoError(t, run(context.Background(), a, "cart", "dec", "c1"))
	assert.Equal(t, []string{"c1"}, api.deleted)
	assert.Contains(t, out.String(), "Your cart is empty")
}

func TestCheckoutDryRunPrintsSummary(t *testing.T) {
	api := &fakeAPI{qty: 2}
	a, _, out := newTestApp(t, api)
	login(t, a)

	require.NoError(t, run(context.Background(), a, "checkout", "--dry-run"))
	assert.Contains(t, out.String(), "SUMMER50")
	assert.Contains(t, out.String(), "$10.80")
	assert.Zero(t, api.orders)
}

func TestCheckoutUsesProfileAddress(t *testing.T) {
	api := &fakeAPI{qty: 2}
	a, _, out := newTestApp(t, api)
	login(t, a)

	require.NoError(t, run(context.Background(), a, "checkout"))
	assert.Equal(t, 1, api.orders)
	assert.Contains(t, out.String(), "Order o1 placed")
	assert.Empty(t, a.cart.Items(), "cart is refreshed after the order")
}

func TestCheckoutEmptyCart(t *testing.T) {
	a, _, _ := newTestApp(t, &fakeAPI{})
	login(t, a)

	err := run(context.Background(), a, "checkout")
	require.Error(t, err)
	assert.Equal(t, "Your cart is empty", err.Error())
}

func TestUnauthorizedDropsSession(t *testing.T) {
	api := &fakeAPI{qty: 1}
	a, storage, _ := newTestApp(t, api)
	login(t, a)

	api.mu.Lock()
	api.expired = true
	api.mu.Unlock()

	require.Error(t, run(context.Background(), a, "cart"))
	assert.False(t, a.auth.IsAuthenticated())
	_, ok, _ := storage.Get(context.Background(), devicestore.KeyToken)
	assert.False(t, ok)
}

func TestThemeTogglePersists(t *testing.T) {
	a, storage, out := newTestApp(t, &fakeAPI{})
	require.NoError(t, run(context.Background(), a, "theme", "toggle"))
	assert.Contains(t, out.String(), "Theme: dark")

	raw, ok, err := storage.Get(context.Background(), devicestore.KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"dark"`)
}
