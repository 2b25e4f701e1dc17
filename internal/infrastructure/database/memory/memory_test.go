package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petalline/storefront/internal/domain/cart"
)

func TestCartStorageReadWriteDelete(t *testing.T) {
	s := NewCartStorage()
	ctx := context.Background()

	if _, err := s.Read(ctx, "k"); !errors.Is(err, cart.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	data := []byte(`{"items":[]}`)
	if err := s.Write(ctx, "k", data); err != nil {
		t.Fatalf("write: %v", err)
	}
	data[0] = 'X'

	got, err := s.Read(ctx, "k")
	if err != nil || string(got) != `{"items":[]}` {
		t.Fatalf("stored record was not copied: %q %v", got, err)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Read(ctx, "k"); !errors.Is(err, cart.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestChangeBusFansOut(t *testing.T) {
	b := NewChangeBus()
	ctx, cancel := context.WithCancel(context.Background())

	first, _ := b.Subscribe(ctx)
	second, _ := b.Subscribe(ctx)

	if err := b.Publish(ctx, "petalline-cart:s1"); err != nil {
		t.Fatalf("publish: %v", err)
	}

	for _, ch := range []<-chan string{first, second} {
		select {
		case key := <-ch:
			if key != "petalline-cart:s1" {
				t.Fatalf("unexpected key %q", key)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber did not receive the key")
		}
	}

	cancel()
	if _, ok := <-first; ok {
		t.Fatalf("expected channel to close after cancel")
	}
	if b.Subscribers() != 0 {
		t.Fatalf("expected subscribers to be removed, got %d", b.Subscribers())
	}
}

func TestStoreWatchReceivesRemoteChange(t *testing.T) {
	storage, bus := NewCartStorage(), NewChangeBus()
	watcher := cart.NewStore(storage, bus, "petalline-cart", cart.DefaultLimits(), nullLogger())
	writer := cart.NewStore(storage, bus, "petalline-cart", cart.DefaultLimits(), nullLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watcher.Watch(ctx, watcher.Key("s1"))
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// a write to another session must not wake this watcher
	if _, err := writer.Save(ctx, writer.Key("s2"), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := writer.Save(ctx, writer.Key("s1"), []cart.Line{{ID: 1, Name: "A", Price: 1, Quantity: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case c := <-changes:
		if c.Key != "petalline-cart:s1" || c.Local || c.Items != nil {
			t.Fatalf("expected key-only remote change, got %+v", c)
		}
	case <-time.After(time.Second):
		t.Fatalf("watcher did not receive the change")
	}
}

func TestManagerWatchStreamsOneViewPerWrite(t *testing.T) {
	storage, bus := NewCartStorage(), NewChangeBus()
	store := cart.NewStore(storage, bus, "petalline-cart", cart.DefaultLimits(), nullLogger())
	m := cart.NewManager(store, cart.Options{Pricing: cart.DefaultPricing(), Limits: cart.DefaultLimits(), Logger: nullLogger()})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	views, err := m.Watch(ctx, "s1")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if _, err := m.Add(ctx, "s1", cart.Line{ID: 1, Name: "Roses", Price: 20, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	select {
	case v := <-views:
		if len(v.Items) != 1 || v.Items[0].Quantity != 2 {
			t.Fatalf("unexpected view %+v", v.Items)
		}
	case <-time.After(time.Second):
		t.Fatalf("local write produced no view")
	}

	select {
	case v := <-views:
		t.Fatalf("bus echo of the same write should be skipped, got %+v", v)
	case <-time.After(100 * time.Millisecond):
	}

	other := cart.NewStore(storage, bus, "petalline-cart", cart.DefaultLimits(), nullLogger())
	time.Sleep(2 * time.Millisecond)
	if _, err := other.Save(ctx, other.Key("s1"), []cart.Line{{ID: 1, Name: "Roses", Price: 20, Quantity: 5}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case v := <-views:
		if len(v.Items) != 1 || v.Items[0].Quantity != 5 {
			t.Fatalf("remote write should be re-read, got %+v", v.Items)
		}
	case <-time.After(time.Second):
		t.Fatalf("remote write produced no view")
	}
}
