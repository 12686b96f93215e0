// Package cache holds the client-side cache of last-known server state.
//
// Keys follow one scheme everywhere: the bare resource type for a collection
// ("appointments") and resourceType:id for a single item ("appointments:42").
// Entries are never authoritative; invalidation marks them stale so
// subscribed consumers refetch before next use.
package cache

import (
	"context"
	"time"
)

// Entry is one cached value with its staleness flag
type Entry struct {
	Value    []byte
	Stale    bool
	StoredAt time.Time
}

// Store is the cache contract shared by the in-memory and Redis backends
type Store interface {
	// Get returns the entry for key and whether it exists. A stale entry is
	// still returned so callers can serve it while refetching.
	Get(ctx context.Context, key string) (Entry, bool, error)
	// Set overwrites the entry for key with fresh state.
	Set(ctx context.Context, key string, value []byte) error
	// Invalidate marks every entry whose key starts with prefix as stale and
	// notifies subscribers of each affected key.
	Invalidate(ctx context.Context, prefix string) error
	// Subscribe registers fn to run for keys invalidated under prefix.
	// The returned cancel func removes the subscription.
	Subscribe(prefix string, fn func(key string)) (cancel func())
	// Close releases backend resources.
	Close() error
}

// CollectionKey returns the cache key for a resource collection
func CollectionKey(resourceType string) string {
	return resourceType
}

// ItemKey returns the cache key for a single resource item
func ItemKey(resourceType, id string) string {
	return resourceType + ":" + id
}
