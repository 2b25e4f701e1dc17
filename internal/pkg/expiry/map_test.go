package expiry

import (
	"fmt"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMapEvictsIdleEntries(t *testing.T) {
	c := &clock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	m := NewMapWithClock[string, int](time.Hour, c.now)

	for i := 0; i < 1000; i++ {
		m.Set(fmt.Sprintf("session-%d", i), i)
	}
	if m.Len() != 1000 {
		t.Fatalf("expected 1000 entries, got %d", m.Len())
	}

	c.advance(59 * time.Minute)
	if _, ok := m.Get("session-7"); !ok {
		t.Fatalf("entry should still be live before ttl")
	}

	c.advance(2 * time.Minute)
	m.Set("fresh", 1)
	if got := m.Len(); got != 2 {
		t.Fatalf("expected only the touched and fresh entries, got %d", got)
	}
	if _, ok := m.Get("session-8"); ok {
		t.Fatalf("idle entry should have expired")
	}
}

func TestMapUpdate(t *testing.T) {
	m := NewMap[string, int](0)

	got := m.Update("a", func(v int, ok bool) (int, bool) {
		if ok {
			t.Fatalf("key should be missing")
		}
		return v + 1, true
	})
	if got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	m.Update("a", func(v int, ok bool) (int, bool) { return v + 1, true })
	if v, _ := m.Get("a"); v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}

	m.Update("a", func(v int, ok bool) (int, bool) { return 0, false })
	if _, ok := m.Get("a"); ok {
		t.Fatalf("update returning keep=false should delete")
	}
}

func TestMapWithoutTTLKeepsEntries(t *testing.T) {
	c := &clock{t: time.Now()}
	m := NewMapWithClock[int, string](0, c.now)
	m.Set(1, "rose")
	c.advance(1000 * time.Hour)
	if v, ok := m.Get(1); !ok || v != "rose" {
		t.Fatalf("expected entry to persist, got %q %v", v, ok)
	}
	m.Delete(1)
	if m.Len() != 0 {
		t.Fatalf("delete should remove the entry")
	}
}
