// internal/infrastructure/database/memory/cart_storage.go
package memory

import (
	"context"
	"sync"

	"github.com/petalline/storefront/internal/domain/cart"
)

// CartStorage is an in-memory cart.Storage used by the memory driver and in tests
type CartStorage struct {
	mu    sync.RWMutex
	store map[string][]byte
}

var _ cart.Storage = (*CartStorage)(nil)

// NewCartStorage creates an empty in-memory cart storage
func NewCartStorage() *CartStorage {
	return &CartStorage{store: make(map[string][]byte)}
}

// Read returns a copy of the stored record
func (s *CartStorage) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.store[key]
	if !ok {
		return nil, cart.ErrNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores a copy of the record
func (s *CartStorage) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.store[key] = stored
	return nil
}

// Delete removes the record
func (s *CartStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.store, key)
	return nil
}
