package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsuite/backend/pkg/client/cache"
)

func seedCache(t *testing.T, store cache.Store, keys ...string) {
	t.Helper()
	for _, key := range keys {
		require.NoError(t, store.Set(context.Background(), key, []byte("{}")))
	}
}

func assertStale(t *testing.T, store cache.Store, key string, wantStale bool) {
	t.Helper()
	entry, ok, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok, key)
	assert.Equal(t, wantStale, entry.Stale, key)
}

func TestMutationExecutor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates the affected keys after a confirmed write", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/v1/services/42", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": "42"}})
		}))
		defer server.Close()

		store := cache.NewMemoryStore()
		c := New(server.URL, WithCache(store))
		seedCache(t, store,
			cache.CollectionKey("services"),
			cache.ItemKey("services", "42"),
			cache.CollectionKey("products"))

		env, err := c.exec.Execute(ctx, Mutation{
			Resource: "services", ID: "42", Method: http.MethodPut,
			Body: map[string]any{"price": 65.0},
		})
		require.NoError(t, err)
		assert.True(t, env.Success)

		assertStale(t, store, "services", true)
		assertStale(t, store, "services:42", true)
		assertStale(t, store, "products", false)
	})

	t.Run("a create invalidates the collection only", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/services", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": "new"}})
		}))
		defer server.Close()

		store := cache.NewMemoryStore()
		c := New(server.URL, WithCache(store))
		seedCache(t, store, cache.CollectionKey("services"), cache.CollectionKey("products"))

		_, err := c.exec.Execute(ctx, Mutation{
			Resource: "services", Method: http.MethodPost,
			Body: map[string]any{"name": "Corte"},
		})
		require.NoError(t, err)

		assertStale(t, store, "services", true)
		assertStale(t, store, "products", false)
	})

	t.Run("a rejected write invalidates nothing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"errors":  []map[string]string{{"field": "price", "message": "Must be greater than 0"}},
			})
		}))
		defer server.Close()

		store := cache.NewMemoryStore()
		c := New(server.URL, WithCache(store))
		seedCache(t, store, cache.CollectionKey("services"), cache.ItemKey("services", "42"))

		_, err := c.exec.Execute(ctx, Mutation{
			Resource: "services", ID: "42", Method: http.MethodPut,
			Body: map[string]any{"price": -1.0},
		})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsValidation())
		require.Len(t, apiErr.Fields, 1)
		assert.Equal(t, "price", apiErr.Fields[0].Field)

		assertStale(t, store, "services", false)
		assertStale(t, store, "services:42", false)
	})

	t.Run("a transport failure invalidates nothing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close() // connection refused from here on

		store := cache.NewMemoryStore()
		c := New(server.URL, WithCache(store))
		seedCache(t, store, cache.CollectionKey("services"))

		_, err := c.exec.Execute(ctx, Mutation{
			Resource: "services", ID: "42", Method: http.MethodDelete,
		})

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assertStale(t, store, "services", false)
	})

	t.Run("allows at most one in-flight write per resource and id", func(t *testing.T) {
		release := make(chan struct{})
		entered := make(chan struct{}, 8)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			entered <- struct{}{}
			<-release
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
		}))
		defer server.Close()

		c := New(server.URL)
		mutation := Mutation{Resource: "services", ID: "42", Method: http.MethodPut, Body: map[string]any{}}

		done := make(chan error, 1)
		go func() {
			_, err := c.exec.Execute(ctx, mutation)
			done <- err
		}()
		<-entered // first write is now awaiting its response

		_, err := c.exec.Execute(ctx, mutation)
		assert.ErrorIs(t, err, ErrMutationInFlight)

		// A write for a different record is not blocked.
		other := Mutation{Resource: "services", ID: "43", Method: http.MethodPut, Body: map[string]any{}}
		otherDone := make(chan error, 1)
		go func() {
			_, err := c.exec.Execute(ctx, other)
			otherDone <- err
		}()
		<-entered

		close(release)
		require.NoError(t, <-done)
		require.NoError(t, <-otherDone)

		// The first write settled, so the same mutation may run again.
		_, err = c.exec.Execute(ctx, mutation)
		require.NoError(t, err)
	})
}
