package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
)

func TestUpdateProfileSendsOnlySetFields(t *testing.T) {
	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			_ = json.NewDecoder(r.Body).Decode(&sent)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"u1","name":"Ann","email":"a@b.c","city":"Pune"}`))
	}))
	defer srv.Close()
	svc := New(apiclient.New(config.Client{APIURL: srv.URL, Timeout: time.Second}, nil))

	city := "Pune"
	p, err := svc.UpdateProfile(context.Background(), domain.ProfileUpdate{City: &city})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"city": "Pune"}, sent)
	assert.Equal(t, "u1", p.ID)

	p, err = svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", p.Name)
}
