package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore is the in-process Store used by a single client instance.
type MemoryStore struct {
	mu          sync.RWMutex
	entries     map[string]Entry
	subscribers map[int]subscription
	nextSubID   int
}

type subscription struct {
	prefix string
	fn     func(key string)
}

// NewMemoryStore creates an empty in-memory cache store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:     make(map[string]Entry),
		subscribers: make(map[int]subscription),
	}
}

// Get returns the entry for key and whether it exists
func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	return entry, ok, nil
}

// Set overwrites the entry for key with fresh state
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = Entry{
		Value:    value,
		Stale:    false,
		StoredAt: time.Now(),
	}
	return nil
}

// Invalidate marks every entry under prefix stale and notifies subscribers.
// Notification runs outside the lock so a subscriber may immediately refetch
// and Set without deadlocking.
func (s *MemoryStore) Invalidate(_ context.Context, prefix string) error {
	s.mu.Lock()
	var affected []string
	for key, entry := range s.entries {
		if strings.HasPrefix(key, prefix) && !entry.Stale {
			entry.Stale = true
			s.entries[key] = entry
			affected = append(affected, key)
		}
	}
	var subs []subscription
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, key := range affected {
		for _, sub := range subs {
			if strings.HasPrefix(key, sub.prefix) {
				sub.fn(key)
			}
		}
	}
	return nil
}

// Subscribe registers fn to run for keys invalidated under prefix
func (s *MemoryStore) Subscribe(prefix string, fn func(key string)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = subscription{prefix: prefix, fn: fn}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error { return nil }
