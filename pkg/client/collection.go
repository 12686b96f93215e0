package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/salonsuite/backend/pkg/client/cache"
)

// Collection is the typed accessor for one resource type. Reads serve from
// the cache when a fresh entry exists and refetch otherwise; writes go
// through the mutation executor.
type Collection[T any] struct {
	c        *Client
	resource string
}

// NewCollection creates a typed collection over a resource segment,
// e.g. "services"
func NewCollection[T any](c *Client, resource string) Collection[T] {
	return Collection[T]{c: c, resource: resource}
}

// List returns all records the principal owns
func (col Collection[T]) List(ctx context.Context) ([]T, error) {
	key := cache.CollectionKey(col.resource)
	if entry, ok, err := col.c.cache.Get(ctx, key); err == nil && ok && !entry.Stale {
		var records []T
		if err := json.Unmarshal(entry.Value, &records); err == nil {
			return records, nil
		}
	}

	env, err := col.c.do(ctx, http.MethodGet, "/"+col.resource, nil)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("unexpected list payload: %w", err)}
	}
	_ = col.c.cache.Set(ctx, key, env.Data)
	return records, nil
}

// Get returns one record by id
func (col Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	key := cache.ItemKey(col.resource, id)
	if entry, ok, err := col.c.cache.Get(ctx, key); err == nil && ok && !entry.Stale {
		var record T
		if err := json.Unmarshal(entry.Value, &record); err == nil {
			return &record, nil
		}
	}

	env, err := col.c.do(ctx, http.MethodGet, "/"+col.resource+"/"+id, nil)
	if err != nil {
		return nil, err
	}

	var record T
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("unexpected record payload: %w", err)}
	}
	_ = col.c.cache.Set(ctx, key, env.Data)
	return &record, nil
}

// Create inserts a new record and returns the stored state
func (col Collection[T]) Create(ctx context.Context, payload any) (*T, error) {
	env, err := col.c.exec.Execute(ctx, Mutation{
		Resource: col.resource,
		Method:   http.MethodPost,
		Body:     payload,
	})
	if err != nil {
		return nil, err
	}

	var record T
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("unexpected record payload: %w", err)}
	}
	return &record, nil
}

// Update patches a record and returns the post-update state
func (col Collection[T]) Update(ctx context.Context, id string, patch any) (*T, error) {
	env, err := col.c.exec.Execute(ctx, Mutation{
		Resource: col.resource,
		ID:       id,
		Method:   http.MethodPut,
		Body:     patch,
	})
	if err != nil {
		return nil, err
	}

	var record T
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("unexpected record payload: %w", err)}
	}
	return &record, nil
}

// Delete removes a record. Deleting an already removed record returns an
// *APIError with IsNotFound() == true.
func (col Collection[T]) Delete(ctx context.Context, id string) error {
	_, err := col.c.exec.Execute(ctx, Mutation{
		Resource: col.resource,
		ID:       id,
		Method:   http.MethodDelete,
	})
	return err
}
