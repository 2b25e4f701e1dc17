// internal/pkg/expiry/map.go
package expiry

import (
	"sync"
	"time"
)

const maxSweepInterval = time.Minute

type entry[V any] struct {
	value   V
	touched time.Time
}

// Map is a concurrency-safe map whose entries expire after ttl without access.
// A non-positive ttl keeps entries forever.
type Map[K comparable, V any] struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	entries   map[K]entry[V]
	lastSweep time.Time
}

func NewMap[K comparable, V any](ttl time.Duration) *Map[K, V] {
	return NewMapWithClock[K, V](ttl, time.Now)
}

func NewMapWithClock[K comparable, V any](ttl time.Duration, now func() time.Time) *Map[K, V] {
	return &Map[K, V]{
		ttl:       ttl,
		now:       now,
		entries:   make(map[K]entry[V]),
		lastSweep: now(),
	}
}

// Get returns the value for key and refreshes its expiry.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	e, ok := m.live(key, now)
	if !ok {
		var zero V
		return zero, false
	}
	e.touched = now
	m.entries[key] = e
	return e.value, true
}

func (m *Map[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	m.entries[key] = entry[V]{value: value, touched: now}
}

func (m *Map[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Update applies fn to the current value under the map lock. Returning keep=false removes the key.
func (m *Map[K, V]) Update(key K, fn func(value V, ok bool) (V, bool)) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	e, ok := m.live(key, now)
	next, keep := fn(e.value, ok)
	if !keep {
		delete(m.entries, key)
		return next
	}
	m.entries[key] = entry[V]{value: next, touched: now}
	return next
}

// Len counts entries that have not expired yet.
func (m *Map[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepAll(m.now())
	return len(m.entries)
}

func (m *Map[K, V]) live(key K, now time.Time) (entry[V], bool) {
	e, ok := m.entries[key]
	if !ok {
		return entry[V]{}, false
	}
	if m.expired(e, now) {
		delete(m.entries, key)
		return entry[V]{}, false
	}
	return e, true
}

func (m *Map[K, V]) expired(e entry[V], now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.touched) >= m.ttl
}

func (m *Map[K, V]) sweep(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	interval := m.ttl
	if interval > maxSweepInterval {
		interval = maxSweepInterval
	}
	if now.Sub(m.lastSweep) < interval {
		return
	}
	m.sweepAll(now)
}

func (m *Map[K, V]) sweepAll(now time.Time) {
	m.lastSweep = now
	if m.ttl <= 0 {
		return
	}
	for k, e := range m.entries {
		if m.expired(e, now) {
			delete(m.entries, k)
		}
	}
}
