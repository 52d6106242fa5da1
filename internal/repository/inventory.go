package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

const inventoryKeyPrefix = "inventory:"

// RedisInventoryStore keeps inventory counters in Redis so they survive the
// process and can be shared between instances.
type RedisInventoryStore struct {
	client redis.Cmdable
}

func NewRedisInventoryStore(client redis.Cmdable) *RedisInventoryStore {
	return &RedisInventoryStore{client: client}
}

func (s *RedisInventoryStore) Add(ctx context.Context, counter string, delta int64) (int64, error) {
	return s.client.IncrBy(ctx, inventoryKeyPrefix+counter, delta).Result()
}

func (s *RedisInventoryStore) Get(ctx context.Context, counter string) (int64, error) {
	value, err := s.client.Get(ctx, inventoryKeyPrefix+counter).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return value, err
}

// InMemoryInventoryStore is the fallback used when no Redis URL is
// configured.
type InMemoryInventoryStore struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewInMemoryInventoryStore() *InMemoryInventoryStore {
	return &InMemoryInventoryStore{counters: make(map[string]int64)}
}

func (s *InMemoryInventoryStore) Add(ctx context.Context, counter string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[counter] += delta

	return s.counters[counter], nil
}

func (s *InMemoryInventoryStore) Get(ctx context.Context, counter string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counters[counter], nil
}
