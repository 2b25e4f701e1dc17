package cart

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/petalline/storefront/internal/pkg/notify"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeStorage struct {
	mu        sync.Mutex
	data      map[string][]byte
	failWrite bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string][]byte)}
}

func (f *fakeStorage) Read(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (f *fakeStorage) Write(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		return errors.New("quota exceeded")
	}
	f.data[key] = data
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

type fakeBus struct {
	mu        sync.Mutex
	published []string
}

func (b *fakeBus) Publish(ctx context.Context, key string) error {
	b.mu.Lock()
	b.published = append(b.published, key)
	b.mu.Unlock()
	return nil
}

func (b *fakeBus) Subscribe(ctx context.Context) (<-chan string, error) {
	ch := make(chan string)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestManager(t *testing.T) (*Manager, *fakeStorage, *fakeBus, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	storage := newFakeStorage()
	bus := &fakeBus{}
	store := NewStore(storage, bus, "petalline-cart", DefaultLimits(), logger)
	m := NewManager(store, Options{
		Pricing:  DefaultPricing(),
		Limits:   DefaultLimits(),
		Notifier: notify.NewNotifier(0, 0),
		Logger:   logger,
	})
	return m, storage, bus, hook
}

func price(v float64) *float64 { return &v }

func bouquet(id int, p float64, qty int) Line {
	return Line{ID: id, Name: "Bouquet", Price: p, Quantity: qty, Image: "/assets/products/1.jpg"}
}

func TestLineInvariantsHoldForRandomSequences(t *testing.T) {
	lim := DefaultLimits()
	rnd := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		var lines []Line
		for op := 0; op < 60; op++ {
			id := rnd.Intn(8) + 1
			switch rnd.Intn(5) {
			case 0, 1:
				lines, _ = lim.AddOrMerge(lines, bouquet(id, 10, rnd.Intn(120)))
			case 2:
				lines, _, _ = lim.SetQuantity(lines, id, rnd.Intn(200)-50)
			case 3:
				lines, _, _ = Remove(lines, id)
			case 4:
				lines, _, _ = lim.Increase(lines, id)
			}

			seen := make(map[int]bool)
			for _, l := range lines {
				if seen[l.ID] {
					t.Fatalf("run %d: duplicate line %d", run, l.ID)
				}
				seen[l.ID] = true
				if l.Quantity < 1 || l.Quantity > lim.MaxPerLine {
					t.Fatalf("run %d: quantity %d out of range", run, l.Quantity)
				}
			}
			if Units(lines) > lim.MaxTotal {
				t.Fatalf("run %d: aggregate %d exceeds cap", run, Units(lines))
			}
		}
	}
}

func TestAddOrMergeClampsToCaps(t *testing.T) {
	lim := DefaultLimits()

	lines, out := lim.AddOrMerge(nil, bouquet(1, 10, 30))
	if !out.Changed || lines[0].Quantity != 30 {
		t.Fatalf("expected 30 units, got %+v", lines)
	}

	lines, out = lim.AddOrMerge(lines, bouquet(1, 10, 30))
	if !errors.Is(out.Limit, ErrCartFull) || lines[0].Quantity != 50 || out.Added != 20 {
		t.Fatalf("expected clamp to 50 with cart-full warning, got %+v %+v", lines, out)
	}

	_, out = lim.AddOrMerge(lines, bouquet(2, 10, 1))
	if out.Changed || !errors.Is(out.Limit, ErrCartFull) {
		t.Fatalf("expected rejection at aggregate cap, got %+v", out)
	}

	big := Limits{MaxPerLine: 99, MaxTotal: 500}
	lines, _ = big.AddOrMerge(nil, bouquet(3, 10, 98))
	lines, out = big.AddOrMerge(lines, bouquet(3, 10, 5))
	if lines[0].Quantity != 99 || !errors.Is(out.Limit, ErrLineFull) {
		t.Fatalf("expected per-line clamp at 99, got %+v %+v", lines, out)
	}
	_, out = big.AddOrMerge(lines, bouquet(3, 10, 1))
	if out.Changed || !errors.Is(out.Limit, ErrLineFull) {
		t.Fatalf("expected line-full rejection, got %+v", out)
	}
}

func TestSetQuantityClamps(t *testing.T) {
	lim := DefaultLimits()
	lines := []Line{bouquet(1, 10, 5), bouquet(2, 10, 10)}

	got, _, err := lim.SetQuantity(lines, 1, 0)
	if err != nil || got[0].Quantity != 1 {
		t.Fatalf("expected clamp to 1, got %+v %v", got, err)
	}

	got, out, _ := lim.SetQuantity(lines, 1, 500)
	if got[0].Quantity != 40 || !errors.Is(out.Limit, ErrCartFull) {
		t.Fatalf("expected clamp to remaining capacity 40, got %+v", got)
	}

	if lines[0].Quantity != 5 {
		t.Fatalf("input slice was mutated")
	}

	if _, _, err := lim.SetQuantity(lines, 9, 2); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestDecreaseNeverBelowOne(t *testing.T) {
	lim := DefaultLimits()
	lines := []Line{bouquet(1, 10, 1)}

	got, out, err := lim.Decrease(lines, 1)
	if err != nil || out.Changed || got[0].Quantity != 1 {
		t.Fatalf("expected no-op at 1, got %+v %+v %v", got, out, err)
	}
}

func TestNormalizeRepairsForeignRecords(t *testing.T) {
	lim := DefaultLimits()
	lines := []Line{bouquet(1, 10, 30), bouquet(1, 10, 5), bouquet(2, 10, 0), bouquet(3, 10, 40)}

	got, changed := lim.Normalize(lines)
	if !changed {
		t.Fatalf("expected repair to be reported")
	}
	if len(got) != 3 || got[0].Quantity != 35 || got[1].Quantity != 1 || got[2].Quantity != 14 {
		t.Fatalf("unexpected normalized lines %+v", got)
	}
}

func TestComputeSummaryExample(t *testing.T) {
	p := DefaultPricing()
	lines := []Line{{ID: 1, Name: "Dreamy", Price: 89.99, OriginalPrice: price(105.99), Quantity: 2}}

	s := NewSummaryView(p.Compute(lines, nil))
	if s.Subtotal != 179.98 {
		t.Fatalf("subtotal = %v", s.Subtotal)
	}
	if s.ItemDiscount != 32.00 {
		t.Fatalf("item discount = %v", s.ItemDiscount)
	}
	if s.Shipping != 0 || s.ShippingLabel != "Free" {
		t.Fatalf("expected free shipping, got %v %q", s.Shipping, s.ShippingLabel)
	}
	if s.Tax != 11.84 {
		t.Fatalf("tax = %v", s.Tax)
	}
	if s.Total != 159.82 || s.TotalLabel != "$159.82" {
		t.Fatalf("total = %v %q", s.Total, s.TotalLabel)
	}
	if !s.ShowDiscount || s.DiscountLabel != "-$32.00" {
		t.Fatalf("expected visible discount line, got %+v", s)
	}
}

func TestComputeSummaryFlatShippingAndIdempotence(t *testing.T) {
	p := DefaultPricing()
	lines := []Line{bouquet(1, 20, 2)}

	first := p.Compute(lines, nil)
	second := p.Compute(lines, nil)
	if !reflect.DeepEqual(NewSummaryView(first), NewSummaryView(second)) {
		t.Fatalf("summary is not idempotent")
	}

	s := NewSummaryView(first)
	if s.Shipping != 9.99 || s.ShippingLabel != "$9.99" {
		t.Fatalf("expected flat shipping, got %+v", s)
	}
	if s.ShowDiscount {
		t.Fatalf("discount line should be hidden")
	}
	if s.ItemCountLabel != "Subtotal (2 items)" {
		t.Fatalf("unexpected count label %q", s.ItemCountLabel)
	}
}

func TestPromoDiscountExample(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	ctx := context.Background()

	if _, err := m.Add(ctx, "s1", bouquet(1, 30, 2)); err != nil {
		t.Fatalf("add: %v", err)
	}

	res, err := m.ApplyPromo(ctx, "s1", "save10")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Cart.Summary.PromoDiscount != 6.00 {
		t.Fatalf("expected 6.00 promo discount, got %v", res.Cart.Summary.PromoDiscount)
	}
	if res.Notice.Message != "Promo code applied! 10% off" || res.Notice.Level != notify.LevelSuccess {
		t.Fatalf("unexpected notice %+v", res.Notice)
	}
	if res.Cart.Promo == nil || !res.Cart.Promo.Locked {
		t.Fatalf("expected locked promo state")
	}

	if _, err := m.ApplyPromo(ctx, "s1", "WELCOME20"); !errors.Is(err, ErrPromoLocked) {
		t.Fatalf("expected locked promo, got %v", err)
	}
}

func TestPromoBelowMinimumLeavesSummaryUnchanged(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	ctx := context.Background()

	if _, err := m.Add(ctx, "s1", bouquet(1, 20, 2)); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := m.Get(ctx, "s1")

	res, err := m.ApplyPromo(ctx, "s1", "SAVE10")
	if !errors.Is(err, ErrPromoBelowMinimum) {
		t.Fatalf("expected ErrPromoBelowMinimum, got %v", err)
	}
	if res.Notice.Message != "Minimum order of $50 required for this code" || res.Notice.Level != notify.LevelWarning {
		t.Fatalf("unexpected notice %+v", res.Notice)
	}
	if m.AppliedPromo("s1") != nil {
		t.Fatalf("promo should not be applied")
	}
	if !reflect.DeepEqual(before.Summary, res.Cart.Summary) {
		t.Fatalf("summary changed: %+v vs %+v", before.Summary, res.Cart.Summary)
	}
}

func TestUnknownPromoIsRejected(t *testing.T) {
	m, _, _, _ := newTestManager(t)

	res, err := m.ApplyPromo(context.Background(), "s1", "FREEBIE")
	if !errors.Is(err, ErrInvalidPromo) {
		t.Fatalf("expected ErrInvalidPromo, got %v", err)
	}
	if res.Notice.Level != notify.LevelError || res.Notice.DismissAfterMs != 4000 {
		t.Fatalf("unexpected notice %+v", res.Notice)
	}
}

func TestPromoSuspendedBelowMinimumAfterRemoval(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	ctx := context.Background()

	m.Add(ctx, "s1", bouquet(1, 30, 1))
	m.Add(ctx, "s1", bouquet(2, 30, 1))
	if _, err := m.ApplyPromo(ctx, "s1", "SAVE10"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	res, err := m.Remove(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if res.Cart.Summary.PromoDiscount != 0 || res.Cart.Promo == nil || !res.Cart.Promo.Suspended {
		t.Fatalf("expected suspended promo, got %+v", res.Cart.Promo)
	}
}

func TestPromoForgottenWhenCartEmpties(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	ctx := context.Background()

	m.Add(ctx, "s1", bouquet(1, 60, 1))
	if _, err := m.ApplyPromo(ctx, "s1", "SAVE10"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := m.Remove(ctx, "s1", 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if m.AppliedPromo("s1") != nil {
		t.Fatalf("promo should be dropped with the last line")
	}

	res, _ := m.Add(ctx, "s1", bouquet(1, 60, 1))
	if res.Cart.Summary.PromoDiscount != 0 || res.Cart.Promo != nil {
		t.Fatalf("a refilled cart should start without a promo, got %+v", res.Cart.Promo)
	}
}

func TestPromoForgottenWhenRecordExpires(t *testing.T) {
	m, storage, _, _ := newTestManager(t)
	ctx := context.Background()

	m.Add(ctx, "s1", bouquet(1, 60, 1))
	if _, err := m.ApplyPromo(ctx, "s1", "SAVE10"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	storage.mu.Lock()
	delete(storage.data, m.Store().Key("s1"))
	storage.mu.Unlock()

	if v := m.Get(ctx, "s1"); !v.Empty {
		t.Fatalf("expected empty view after the record expired")
	}
	if m.AppliedPromo("s1") != nil {
		t.Fatalf("promo should not outlive its cart record")
	}
}

func TestIdleSessionPromosAreEvicted(t *testing.T) {
	logger, _ := test.NewNullLogger()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	store := NewStore(newFakeStorage(), &fakeBus{}, "petalline-cart", DefaultLimits(), logger)
	m := NewManager(store, Options{
		Pricing:    DefaultPricing(),
		Limits:     DefaultLimits(),
		Logger:     logger,
		SessionTTL: time.Hour,
		Now:        func() time.Time { return now },
	})
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		session := fmt.Sprintf("s%d", i)
		m.Add(ctx, session, bouquet(1, 60, 1))
		if _, err := m.ApplyPromo(ctx, session, "SAVE10"); err != nil {
			t.Fatalf("apply %s: %v", session, err)
		}
	}
	if got := m.applied.Len(); got != 1000 {
		t.Fatalf("expected 1000 applied promos, got %d", got)
	}

	now = now.Add(time.Hour + time.Minute)
	if got := m.applied.Len(); got != 0 {
		t.Fatalf("expected idle promos to be evicted, got %d", got)
	}
	if m.AppliedPromo("s1") != nil {
		t.Fatalf("evicted promo should not apply")
	}
}

func TestStoreWatchDeliversLocalWrites(t *testing.T) {
	logger, _ := test.NewNullLogger()
	store := NewStore(newFakeStorage(), &fakeBus{}, "petalline-cart", DefaultLimits(), logger)
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := store.Watch(ctx, store.Key("s1"))
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	store.Save(ctx, store.Key("s2"), []Line{bouquet(2, 10, 1)})
	store.Save(ctx, store.Key("s1"), []Line{bouquet(1, 10, 3)})

	select {
	case c := <-changes:
		if !c.Local || c.Key != "petalline-cart:s1" || len(c.Items) != 1 || c.Items[0].Quantity != 3 || c.LastUpdated == 0 {
			t.Fatalf("unexpected change %+v", c)
		}
	case <-time.After(time.Second):
		t.Fatalf("local write was not delivered")
	}

	cancel()
	for range changes {
	}
	store.Save(context.Background(), store.Key("s1"), []Line{bouquet(1, 10, 4)})

	store.mu.RLock()
	listeners := len(store.listeners)
	store.mu.RUnlock()
	if listeners != 0 {
		t.Fatalf("watch should unregister its listener, got %d", listeners)
	}
}

func TestRoundTripPreservesOrder(t *testing.T) {
	logger, _ := test.NewNullLogger()
	store := NewStore(newFakeStorage(), &fakeBus{}, "petalline-cart", DefaultLimits(), logger)
	ctx := context.Background()
	key := store.Key("s1")

	lines := []Line{
		{ID: 3, Name: "C", Price: 45, Quantity: 1, Image: "c.jpg", AddedAt: 1},
		{ID: 1, Name: "A", Price: 89.99, OriginalPrice: price(105.99), Quantity: 2, Image: "a.jpg", Category: "Roses"},
		{ID: 2, Name: "B", Price: 12.5, Quantity: 4, Image: "b.jpg"},
	}
	if _, err := store.Save(ctx, key, lines); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := store.Load(ctx, key)
	if !reflect.DeepEqual(got.Items, lines) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got.Items, lines)
	}
	if got.LastUpdated == 0 {
		t.Fatalf("expected lastUpdated to be set")
	}
}

func TestLoadFailsSoftOnMalformedRecord(t *testing.T) {
	logger, hook := test.NewNullLogger()
	storage := newFakeStorage()
	store := NewStore(storage, &fakeBus{}, "petalline-cart", DefaultLimits(), logger)
	storage.data[store.Key("s1")] = []byte("{not json")

	c := store.Load(context.Background(), store.Key("s1"))
	if c.Items == nil || len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", c)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.WarnLevel {
		t.Fatalf("expected a logged warning")
	}
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	m, storage, bus, hook := newTestManager(t)
	storage.failWrite = true

	res, err := m.Add(context.Background(), "s1", bouquet(1, 10, 2))
	if err != nil {
		t.Fatalf("add should not fail: %v", err)
	}
	if res.Persisted {
		t.Fatalf("expected persisted=false")
	}
	if len(res.Cart.Items) != 1 || res.Cart.Items[0].Quantity != 2 {
		t.Fatalf("response should reflect the mutation, got %+v", res.Cart.Items)
	}
	if len(bus.published) != 0 {
		t.Fatalf("no change should be published for a failed write")
	}

	found := false
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Message == "Failed to save cart" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the write failure to be logged")
	}
}

func TestMutationNotifiesLocalListenersAndPublishes(t *testing.T) {
	m, _, bus, _ := newTestManager(t)
	ctx := context.Background()

	var got []Change
	unsubscribe := m.Store().OnChange(func(c Change) { got = append(got, c) })
	defer unsubscribe()

	if _, err := m.Add(ctx, "s1", bouquet(1, 10, 1)); err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(got) != 1 || !got[0].Local || len(got[0].Items) != 1 {
		t.Fatalf("expected one synchronous local change, got %+v", got)
	}
	if len(bus.published) != 1 || bus.published[0] != "petalline-cart:s1" {
		t.Fatalf("expected key to be published, got %v", bus.published)
	}
}

func TestRemovingLastLineShowsEmptyView(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	ctx := context.Background()

	m.Add(ctx, "s1", Line{ID: 7, Name: "Tulips", Price: 40, Quantity: 1})
	res, err := m.Remove(ctx, "s1", 7)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !res.Cart.Empty || len(res.Cart.Items) != 0 {
		t.Fatalf("expected empty view, got %+v", res.Cart)
	}
	if res.Notice.Message != "Tulips removed from cart" || res.Notice.Level != notify.LevelInfo {
		t.Fatalf("unexpected notice %+v", res.Notice)
	}
}

func TestIncreaseAtCapWarns(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	ctx := context.Background()

	m.Add(ctx, "s1", bouquet(1, 10, 50))
	res, err := m.Increase(ctx, "s1", 1)
	if err != nil {
		t.Fatalf("increase: %v", err)
	}
	if res.Notice.Message != "Maximum 50 items allowed" {
		t.Fatalf("unexpected notice %+v", res.Notice)
	}
	if res.Cart.Items[0].Quantity != 50 {
		t.Fatalf("quantity should stay at 50")
	}
}

func TestLineViewLabels(t *testing.T) {
	v := NewLineView(Line{ID: 1, Name: "Dreamy", Price: 89.99, OriginalPrice: price(105.99), Quantity: 2}, 99)

	if v.UnitPriceLabel != "$89.99 each" || v.LineTotalLabel != "$179.98" {
		t.Fatalf("unexpected price labels %+v", v)
	}
	if v.WasLabel != "Was: $211.98" || v.DiscountBadge != "15% OFF" {
		t.Fatalf("unexpected discount labels %+v", v)
	}
	if v.Description != "Beautiful floral arrangement" || v.RatingLabel != "(4.5)" {
		t.Fatalf("unexpected defaults %+v", v)
	}
}
