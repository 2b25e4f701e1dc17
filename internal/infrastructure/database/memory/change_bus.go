// internal/infrastructure/database/memory/change_bus.go
package memory

import (
	"context"
	"sync"

	"github.com/petalline/storefront/internal/domain/cart"
)

// ChangeBus fans published keys out to every subscriber in the process
type ChangeBus struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]chan string
}

var _ cart.Broadcaster = (*ChangeBus)(nil)

// NewChangeBus creates an empty bus
func NewChangeBus() *ChangeBus {
	return &ChangeBus{subscribers: make(map[int]chan string)}
}

// Publish delivers key to every subscriber. A subscriber whose buffer is full misses the signal.
func (b *ChangeBus) Publish(ctx context.Context, key string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- key:
		default:
		}
	}
	return nil
}

// Subscribe registers a subscriber until ctx is done
func (b *ChangeBus) Subscribe(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 16)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subscribers, id)
		close(ch)
		b.mu.Unlock()
	}()

	return ch, nil
}

// Subscribers returns the number of live subscriptions
func (b *ChangeBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
