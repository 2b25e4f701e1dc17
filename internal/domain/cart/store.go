// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Storage persists one serialized cart record per key
type Storage interface {
	// Read returns ErrNotFound when the key holds no record
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Broadcaster carries the cross-view "key changed" signal
type Broadcaster interface {
	Publish(ctx context.Context, key string) error
	// Subscribe delivers changed keys until ctx is done, then closes the channel
	Subscribe(ctx context.Context) (<-chan string, error)
}

const watchBuffer = 8

// Store is the single access point to cart records
type Store struct {
	storage Storage
	bus     Broadcaster
	prefix  string
	limits  Limits
	logger  logrus.FieldLogger
	now     func() time.Time

	mu        sync.RWMutex
	listeners map[int]func(Change)
	nextID    int
}

// NewStore creates a new cart store
func NewStore(storage Storage, bus Broadcaster, prefix string, limits Limits, logger logrus.FieldLogger) *Store {
	return &Store{
		storage:   storage,
		bus:       bus,
		prefix:    prefix,
		limits:    limits,
		logger:    logger,
		now:       time.Now,
		listeners: make(map[int]func(Change)),
	}
}

// Key returns the record key for a visitor session
func (s *Store) Key(sessionID string) string {
	return fmt.Sprintf("%s:%s", s.prefix, sessionID)
}

// Load reads the cart record. A missing or undecodable record yields an empty cart.
func (s *Store) Load(ctx context.Context, key string) Cart {
	data, err := s.storage.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Error("Failed to read cart")
		}
		return Cart{Items: []Line{}}
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		s.logger.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Discarding malformed cart record")
		return Cart{Items: []Line{}}
	}

	items, repaired := s.limits.Normalize(c.Items)
	if repaired {
		s.logger.WithField("key", key).Warn("Repaired cart record outside quantity limits")
	}
	c.Items = items
	return c
}

// Save writes the full snapshot, notifies local listeners synchronously and
// publishes the key to other views. A write failure is logged and returned;
// no notification is sent in that case.
func (s *Store) Save(ctx context.Context, key string, items []Line) (Cart, error) {
	if items == nil {
		items = []Line{}
	}
	c := Cart{Items: items, LastUpdated: s.now().UnixMilli()}

	data, err := json.Marshal(c)
	if err != nil {
		return c, fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.storage.Write(ctx, key, data); err != nil {
		s.logger.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Error("Failed to save cart")
		return c, fmt.Errorf("failed to save cart: %w", err)
	}

	s.notify(ctx, Change{Key: key, Items: c.Items, LastUpdated: c.LastUpdated, Local: true})
	return c, nil
}

// Clear removes the record entirely
func (s *Store) Clear(ctx context.Context, key string) error {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Error("Failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.notify(ctx, Change{Key: key, Items: []Line{}, Local: true})
	return nil
}

// OnChange registers a same-process listener called after every successful write.
// The returned func unregisters it.
func (s *Store) OnChange(fn func(Change)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Watch streams changes for one key until ctx is done. Writes made through this
// Store arrive as local changes carrying the items; writes from other processes
// arrive as key-only signals and receivers re-read the store.
func (s *Store) Watch(ctx context.Context, key string) (<-chan Change, error) {
	keys, err := s.bus.Subscribe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to cart changes: %w", err)
	}

	out := make(chan Change, watchBuffer)

	var mu sync.Mutex
	closed := false
	unregister := s.OnChange(func(change Change) {
		if change.Key != key {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		// a dropped local change is still followed by its bus signal
		select {
		case out <- change:
		default:
		}
	})

	go func() {
		defer func() {
			unregister()
			mu.Lock()
			closed = true
			close(out)
			mu.Unlock()
		}()
		for changed := range keys {
			if changed != key {
				continue
			}
			select {
			case out <- Change{Key: key}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (s *Store) notify(ctx context.Context, change Change) {
	s.mu.RLock()
	listeners := make([]func(Change), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(change)
	}

	if err := s.bus.Publish(ctx, change.Key); err != nil {
		s.logger.WithFields(logrus.Fields{"key": change.Key, "error": err.Error()}).Warn("Failed to publish cart change")
	}
}
