// internal/infrastructure/database/redis/cart_storage.go
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petalline/storefront/internal/domain/cart"
	"github.com/redis/go-redis/v9"
)

// CartStorage keeps each cart record as one JSON string key
type CartStorage struct {
	client *redis.Client
	ttl    time.Duration
}

var _ cart.Storage = (*CartStorage)(nil)

// NewCartStorage creates a Redis-backed cart storage. A zero ttl keeps records forever.
func NewCartStorage(client *redis.Client, ttl time.Duration) *CartStorage {
	return &CartStorage{client: client, ttl: ttl}
}

// Read returns the raw record, or cart.ErrNotFound
func (s *CartStorage) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cart.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart from Redis: %w", err)
	}
	return data, nil
}

// Write replaces the record and refreshes its expiry
func (s *CartStorage) Write(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart to Redis: %w", err)
	}
	return nil
}

// Delete removes the record
func (s *CartStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cart from Redis: %w", err)
	}
	return nil
}
