package cart

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
)

type call struct {
	method, path string
	body         map[string]any
}

func newService(t *testing.T, reply string) (*Service, *[]call) {
	t.Helper()
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := call{method: r.Method, path: r.URL.Path}
		_ = json.NewDecoder(r.Body).Decode(&c.body)
		calls = append(calls, c)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	api := apiclient.New(config.Client{APIURL: srv.URL, APIBasePath: "/api", Timeout: time.Second}, nil)
	return New(api), &calls
}

func TestListNormalizesLegacyIDs(t *testing.T) {
	svc, calls := newService(t, `[{"_id":"c1","productId":"p1","quantity":2,"product":{"_id":"p1","name":"Mango","price":3.5}}]`)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ID)
	assert.Equal(t, "7", items[0].LineTotal().String())
	assert.Equal(t, "GET", (*calls)[0].method)
	assert.Equal(t, "/api/cart", (*calls)[0].path)
}

func TestAddPostsProductAndQuantity(t *testing.T) {
	svc, calls := newService(t, `{"id":"c1","productId":"p9","quantity":3}`)

	item, err := svc.Add(context.Background(), "p9", 3)
	require.NoError(t, err)
	assert.Equal(t, "c1", item.ID)
	assert.Equal(t, "p9", (*calls)[0].body["productId"])
	assert.EqualValues(t, 3, (*calls)[0].body["quantity"])
}

func TestUpdateAndRemoveAddressItem(t *testing.T) {
	svc, calls := newService(t, `{"id":"c1","quantity":4}`)

	_, err := svc.Update(context.Background(), "c1", 4)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(context.Background(), "c1"))

	assert.Equal(t, "PUT", (*calls)[0].method)
	assert.Equal(t, "/api/cart/c1", (*calls)[0].path)
	assert.EqualValues(t, 4, (*calls)[0].body["quantity"])
	assert.Equal(t, "DELETE", (*calls)[1].method)
	assert.Equal(t, "/api/cart/c1", (*calls)[1].path)
}
