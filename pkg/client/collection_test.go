package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves a single services record behind the response envelope and
// counts how many GETs actually reach it.
type fakeAPI struct {
	gets    atomic.Int64
	service map[string]any
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{service: map[string]any{
		"id": "0c7f1a1e-9df4-4a8e-8f1e-3f6a4a2b5c11", "name": "Corte", "price": "50", "duration_minutes": 30,
	}}
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/services":
			f.gets.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{f.service}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/services/"+f.service["id"].(string):
			f.gets.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": f.service})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/services":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": f.service})
		case r.Method == http.MethodPut:
			f.service["name"] = "Barba"
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": f.service})
		case r.Method == http.MethodDelete:
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "id": f.service["id"]})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   map[string]string{"code": "ERR_NOT_FOUND", "message": "Resource not found"},
			})
		}
	})
}

func TestCollection_List(t *testing.T) {
	ctx := context.Background()

	t.Run("serves repeated reads from the cache", func(t *testing.T) {
		api := newFakeAPI()
		server := httptest.NewServer(api.handler())
		defer server.Close()

		c := New(server.URL)
		services := c.Services()

		records, err := services.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Corte", records[0].Name)
		assert.Equal(t, int64(1), api.gets.Load())

		_, err = services.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), api.gets.Load(), "second read must not hit the server")
	})

	t.Run("refetches after a confirmed mutation", func(t *testing.T) {
		api := newFakeAPI()
		server := httptest.NewServer(api.handler())
		defer server.Close()

		c := New(server.URL)
		services := c.Services()

		_, err := services.List(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), api.gets.Load())

		_, err = services.Update(ctx, api.service["id"].(string), map[string]any{"name": "Barba"})
		require.NoError(t, err)

		records, err := services.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), api.gets.Load(), "stale collection must be refetched")
		require.Len(t, records, 1)
		assert.Equal(t, "Barba", records[0].Name)
	})
}

func TestCollection_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("caches single records by id", func(t *testing.T) {
		api := newFakeAPI()
		server := httptest.NewServer(api.handler())
		defer server.Close()

		c := New(server.URL)
		id := api.service["id"].(string)

		record, err := c.Services().Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Corte", record.Name)
		assert.Equal(t, int64(1), api.gets.Load())

		_, err = c.Services().Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), api.gets.Load())
	})

	t.Run("maps a missing record to a not-found API error", func(t *testing.T) {
		api := newFakeAPI()
		server := httptest.NewServer(api.handler())
		defer server.Close()

		c := New(server.URL)

		_, err := c.Services().Get(ctx, "2b0e9f3c-1111-2222-3333-444455556666")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsNotFound())
		assert.Equal(t, "ERR_NOT_FOUND", apiErr.Code)
	})
}

func TestCollection_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	server := httptest.NewServer(api.handler())
	defer server.Close()

	c := New(server.URL)

	record, err := c.Services().Create(ctx, map[string]any{
		"name": "Corte", "price": 50.0, "duration_minutes": 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "Corte", record.Name)

	require.NoError(t, c.Services().Delete(ctx, api.service["id"].(string)))
}
