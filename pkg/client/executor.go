package client

import (
	"context"
	"sync"

	"github.com/salonsuite/backend/pkg/client/cache"
)

// Mutation is one write request against a resource collection
type Mutation struct {
	// Resource is the collection name, e.g. "services"
	Resource string
	// ID is set for update and delete, empty for create
	ID string
	// Method is POST, PUT or DELETE
	Method string
	// Body is the JSON payload, nil for delete
	Body any
}

// MutationExecutor issues writes and keeps the cache consistent with
// confirmed server state. On success it invalidates the collection key and,
// for update/delete, the item key. On any failure nothing is invalidated:
// the cache must not act on a success it cannot confirm.
//
// It also allows at most one in-flight write per (resource, id) so a
// double-submit cannot create or mutate twice.
type MutationExecutor struct {
	client *Client

	mu       sync.Mutex
	inflight map[string]struct{}
}

func newMutationExecutor(c *Client) *MutationExecutor {
	return &MutationExecutor{
		client:   c,
		inflight: make(map[string]struct{}),
	}
}

// Execute runs the mutation to completion and returns the decoded envelope.
// A concurrent mutation for the same (resource, id) is rejected with
// ErrMutationInFlight instead of being queued.
func (e *MutationExecutor) Execute(ctx context.Context, m Mutation) (*envelope, error) {
	key := m.Resource
	if m.ID != "" {
		key = cache.ItemKey(m.Resource, m.ID)
	}

	e.mu.Lock()
	if _, busy := e.inflight[key]; busy {
		e.mu.Unlock()
		return nil, ErrMutationInFlight
	}
	e.inflight[key] = struct{}{}
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.inflight, key)
		e.mu.Unlock()
	}()

	path := "/" + m.Resource
	if m.ID != "" {
		path += "/" + m.ID
	}

	env, err := e.client.do(ctx, m.Method, path, m.Body)
	if err != nil {
		return nil, err
	}

	// The write is confirmed; mark the affected keys stale so readers
	// refetch. The item key goes first, then the collection prefix, which
	// also covers any other cached items of this type.
	if m.ID != "" {
		if cacheErr := e.client.cache.Invalidate(ctx, cache.ItemKey(m.Resource, m.ID)); cacheErr != nil {
			return env, cacheErr
		}
	}
	if cacheErr := e.client.cache.Invalidate(ctx, cache.CollectionKey(m.Resource)); cacheErr != nil {
		return env, cacheErr
	}
	return env, nil
}
