package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// invalidationChannel carries invalidated keys between client instances
const invalidationChannel = "salonsuite:cache:invalidations"

// RedisStore is a Store backed by Redis, for clients that share one cache
// across processes. Entries live in hashes so the staleness flag can be
// flipped without rewriting the value; invalidations are fanned out over
// pub/sub so every subscribed instance refetches.
type RedisStore struct {
	rdb       *redis.Client
	keyPrefix string
}

// RedisConfig holds connection settings for the Redis cache backend
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// KeyPrefix namespaces this application's keys, default "salonsuite:cache:"
	KeyPrefix string
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "salonsuite:cache:"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{rdb: rdb, keyPrefix: cfg.KeyPrefix}, nil
}

// Get returns the entry for key and whether it exists
func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	fields, err := s.rdb.HGetAll(ctx, s.keyPrefix+key).Result()
	if err != nil {
		return Entry{}, false, err
	}
	if len(fields) == 0 {
		return Entry{}, false, nil
	}

	entry := Entry{
		Value: []byte(fields["value"]),
		Stale: fields["stale"] == "1",
	}
	if ts, err := time.Parse(time.RFC3339Nano, fields["stored_at"]); err == nil {
		entry.StoredAt = ts
	}
	return entry, true, nil
}

// Set overwrites the entry for key with fresh state
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.HSet(ctx, s.keyPrefix+key, map[string]any{
		"value":     value,
		"stale":     "0",
		"stored_at": time.Now().Format(time.RFC3339Nano),
	}).Err()
}

// Invalidate marks every entry under prefix stale and publishes the affected
// keys so other instances' subscribers refetch too
func (s *RedisStore) Invalidate(ctx context.Context, prefix string) error {
	iter := s.rdb.Scan(ctx, 0, s.keyPrefix+prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		fullKey := iter.Val()
		if err := s.rdb.HSet(ctx, fullKey, "stale", "1").Err(); err != nil {
			return err
		}
		key := strings.TrimPrefix(fullKey, s.keyPrefix)
		if err := s.rdb.Publish(ctx, invalidationChannel, key).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Subscribe listens on the invalidation channel and runs fn for keys under
// prefix. The returned cancel func stops the listener.
func (s *RedisStore) Subscribe(prefix string, fn func(key string)) func() {
	pubsub := s.rdb.Subscribe(context.Background(), invalidationChannel)

	done := make(chan struct{})
	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if strings.HasPrefix(msg.Payload, prefix) {
					fn(msg.Payload)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		_ = pubsub.Close()
	}
}

// Close releases the Redis connection
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
