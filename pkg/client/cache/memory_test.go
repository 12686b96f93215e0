package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "services")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "services", []byte(`[{"name":"Corte"}]`)))

	entry, ok, err := store.Get(ctx, "services")
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, entry.Stale)
	assert.Equal(t, []byte(`[{"name":"Corte"}]`), entry.Value)
	assert.False(t, entry.StoredAt.IsZero())
}

func TestMemoryStore_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("marks every entry under the prefix stale", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, CollectionKey("services"), []byte("[]")))
		require.NoError(t, store.Set(ctx, ItemKey("services", "42"), []byte("{}")))
		require.NoError(t, store.Set(ctx, CollectionKey("products"), []byte("[]")))

		require.NoError(t, store.Invalidate(ctx, "services"))

		for _, key := range []string{"services", "services:42"} {
			entry, ok, err := store.Get(ctx, key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.True(t, entry.Stale, key)
			assert.NotEmpty(t, entry.Value, "stale entries keep their last value")
		}

		entry, ok, err := store.Get(ctx, "products")
		require.NoError(t, err)
		require.True(t, ok)
		assert.False(t, entry.Stale)
	})

	t.Run("notifies matching subscribers once per key", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, ItemKey("services", "42"), []byte("{}")))

		var notified []string
		cancel := store.Subscribe("services", func(key string) {
			notified = append(notified, key)
		})
		defer cancel()

		var other []string
		cancelOther := store.Subscribe("products", func(key string) {
			other = append(other, key)
		})
		defer cancelOther()

		require.NoError(t, store.Invalidate(ctx, "services"))
		assert.Equal(t, []string{"services:42"}, notified)
		assert.Empty(t, other)

		// Already-stale entries do not notify again.
		require.NoError(t, store.Invalidate(ctx, "services"))
		assert.Equal(t, []string{"services:42"}, notified)
	})

	t.Run("a subscriber may write back without deadlocking", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, "services", []byte("[]")))

		cancel := store.Subscribe("services", func(key string) {
			require.NoError(t, store.Set(ctx, key, []byte(`["fresh"]`)))
		})
		defer cancel()

		require.NoError(t, store.Invalidate(ctx, "services"))

		entry, ok, err := store.Get(ctx, "services")
		require.NoError(t, err)
		require.True(t, ok)
		assert.False(t, entry.Stale)
		assert.Equal(t, []byte(`["fresh"]`), entry.Value)
	})
}

func TestMemoryStore_SubscribeCancel(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "services", []byte("[]")))

	calls := 0
	cancel := store.Subscribe("services", func(string) { calls++ })
	cancel()

	require.NoError(t, store.Invalidate(ctx, "services"))
	assert.Zero(t, calls)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "appointments", CollectionKey("appointments"))
	assert.Equal(t, "appointments:42", ItemKey("appointments", "42"))
}
