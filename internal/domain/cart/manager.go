// internal/domain/cart/manager.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petalline/storefront/internal/pkg/expiry"
	"github.com/petalline/storefront/internal/pkg/notify"
	"github.com/sirupsen/logrus"
)

// Options configures a Manager
type Options struct {
	Pricing  Pricing
	Promos   PromoTable
	Limits   Limits
	Notifier *notify.Notifier
	Logger   logrus.FieldLogger
	// SessionTTL expires an idle session's promo; zero keeps it until the cart empties
	SessionTTL time.Duration
	Now        func() time.Time
}

// Manager owns cart mutations, promo session state and cart rendering
type Manager struct {
	store    *Store
	pricing  Pricing
	promos   PromoTable
	limits   Limits
	notifier *notify.Notifier
	logger   logrus.FieldLogger

	applied *expiry.Map[string, Promo] // session id -> applied promo, never persisted
}

// Result is returned by every cart operation
type Result struct {
	Cart      View           `json:"cart"`
	Notice    *notify.Notice `json:"notice,omitempty"`
	Persisted bool           `json:"persisted"`
	Added     int            `json:"added,omitempty"`
}

// NewManager creates a new cart manager
func NewManager(store *Store, opts Options) *Manager {
	if opts.Promos == nil {
		opts.Promos = DefaultPromos()
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewNotifier(0, 0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		store:    store,
		pricing:  opts.Pricing,
		promos:   opts.Promos,
		limits:   opts.Limits,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		applied:  expiry.NewMapWithClock[string, Promo](opts.SessionTTL, opts.Now),
	}
}

// Store returns the underlying cart store
func (m *Manager) Store() *Store {
	return m.store
}

// Limits returns the quantity caps
func (m *Manager) Limits() Limits {
	return m.limits
}

// Get returns the current cart view for a session
func (m *Manager) Get(ctx context.Context, sessionID string) View {
	c := m.store.Load(ctx, m.store.Key(sessionID))
	return m.render(sessionID, c)
}

// Snapshot returns the stored lines and their summary, for read-only consumers
func (m *Manager) Snapshot(ctx context.Context, sessionID string) (Cart, Summary) {
	c := m.store.Load(ctx, m.store.Key(sessionID))
	m.forgetIfEmpty(sessionID, c.Items)
	return c, m.Summarize(sessionID, c.Items)
}

// Summarize computes the summary of lines with the session's promo
func (m *Manager) Summarize(sessionID string, lines []Line) Summary {
	return m.pricing.Compute(lines, m.AppliedPromo(sessionID))
}

// Count returns the aggregate units in the session's cart
func (m *Manager) Count(ctx context.Context, sessionID string) int {
	return Units(m.store.Load(ctx, m.store.Key(sessionID)).Items)
}

// Add merges a line into the cart. Hitting a cap is a warning, not an error.
func (m *Manager) Add(ctx context.Context, sessionID string, line Line) (*Result, error) {
	key := m.store.Key(sessionID)
	c := m.store.Load(ctx, key)

	items, outcome := m.limits.AddOrMerge(c.Items, line)
	if !outcome.Changed {
		return &Result{Cart: m.render(sessionID, c), Notice: m.limitNotice(outcome.Limit)}, nil
	}

	result := m.save(ctx, sessionID, key, items)
	result.Added = outcome.Added
	result.Notice = m.notifier.Success("Item added to cart!")
	if outcome.Limit != nil {
		result.Notice = m.limitNotice(outcome.Limit)
	}

	m.logger.WithFields(logrus.Fields{
		"product_id": line.ID,
		"added":      outcome.Added,
		"quantity":   outcome.Quantity,
	}).Info("Item added to cart")

	return result, nil
}

// SetQuantity stores a direct quantity edit, clamped into range
func (m *Manager) SetQuantity(ctx context.Context, sessionID string, id, quantity int) (*Result, error) {
	key := m.store.Key(sessionID)
	c := m.store.Load(ctx, key)

	items, outcome, err := m.limits.SetQuantity(c.Items, id, quantity)
	if err != nil {
		return nil, err
	}

	result := m.save(ctx, sessionID, key, items)
	result.Notice = m.notifier.Success("Cart updated!")
	if errors.Is(outcome.Limit, ErrCartFull) {
		result.Notice = m.limitNotice(outcome.Limit)
	}
	return result, nil
}

// Increase adds one unit to a line
func (m *Manager) Increase(ctx context.Context, sessionID string, id int) (*Result, error) {
	return m.step(ctx, sessionID, id, m.limits.Increase)
}

// Decrease removes one unit from a line, never below 1
func (m *Manager) Decrease(ctx context.Context, sessionID string, id int) (*Result, error) {
	return m.step(ctx, sessionID, id, m.limits.Decrease)
}

func (m *Manager) step(ctx context.Context, sessionID string, id int, op func([]Line, int) ([]Line, Outcome, error)) (*Result, error) {
	key := m.store.Key(sessionID)
	c := m.store.Load(ctx, key)

	items, outcome, err := op(c.Items, id)
	if err != nil {
		return nil, err
	}
	if outcome.Limit != nil {
		return &Result{Cart: m.render(sessionID, c), Notice: m.limitNotice(outcome.Limit)}, nil
	}

	result := m.save(ctx, sessionID, key, items)
	result.Notice = m.notifier.Success("Cart updated!")
	return result, nil
}

// Remove deletes a line from the cart
func (m *Manager) Remove(ctx context.Context, sessionID string, id int) (*Result, error) {
	key := m.store.Key(sessionID)
	c := m.store.Load(ctx, key)

	items, removed, err := Remove(c.Items, id)
	if err != nil {
		return nil, err
	}

	result := m.save(ctx, sessionID, key, items)
	result.Notice = m.notifier.Info(fmt.Sprintf("%s removed from cart", removed.Name))
	return result, nil
}

// Clear empties the cart and forgets the session's promo
func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	m.applied.Delete(sessionID)

	return m.store.Clear(ctx, m.store.Key(sessionID))
}

// ApplyPromo attaches a promo code to the session when the subtotal qualifies
func (m *Manager) ApplyPromo(ctx context.Context, sessionID, code string) (*Result, error) {
	c := m.store.Load(ctx, m.store.Key(sessionID))

	if current := m.AppliedPromo(sessionID); current != nil {
		return &Result{
			Cart:   m.render(sessionID, c),
			Notice: m.notifier.Warning(fmt.Sprintf("Promo code %s is already applied", current.Code)),
		}, ErrPromoLocked
	}

	promo, ok := m.promos.Lookup(code)
	if !ok {
		return &Result{Cart: m.render(sessionID, c), Notice: m.notifier.Error("Invalid promo code")}, ErrInvalidPromo
	}

	if Subtotal(c.Items).LessThan(promo.MinAmount) {
		return &Result{
			Cart:   m.render(sessionID, c),
			Notice: m.notifier.Warning(fmt.Sprintf("Minimum order of $%s required for this code", promo.MinAmount.String())),
		}, ErrPromoBelowMinimum
	}

	m.applied.Set(sessionID, promo)

	m.logger.WithFields(logrus.Fields{"code": promo.Code, "session_id": sessionID}).Info("Promo code applied")

	return &Result{
		Cart:      m.render(sessionID, c),
		Notice:    m.notifier.Success(fmt.Sprintf("Promo code applied! %d%% off", promo.Percent())),
		Persisted: true,
	}, nil
}

// RemovePromo unlocks the promo input by forgetting the applied code
func (m *Manager) RemovePromo(ctx context.Context, sessionID string) *Result {
	m.applied.Delete(sessionID)

	return &Result{
		Cart:      m.Get(ctx, sessionID),
		Notice:    m.notifier.Info("Promo code removed"),
		Persisted: true,
	}
}

// AppliedPromo returns the session's promo, or nil
func (m *Manager) AppliedPromo(sessionID string) *Promo {
	promo, ok := m.applied.Get(sessionID)
	if !ok {
		return nil
	}
	return &promo
}

// Watch streams a fresh view each time the session's cart changes in any view.
// A remote signal that echoes an already streamed write is skipped.
func (m *Manager) Watch(ctx context.Context, sessionID string) (<-chan View, error) {
	key := m.store.Key(sessionID)
	changes, err := m.store.Watch(ctx, key)
	if err != nil {
		return nil, err
	}

	views := make(chan View, 1)
	go func() {
		defer close(views)
		last := int64(-1)
		for change := range changes {
			var c Cart
			if change.Local {
				c = Cart{Items: change.Items, LastUpdated: change.LastUpdated}
			} else {
				c = m.store.Load(ctx, key)
				if c.LastUpdated == last {
					continue
				}
			}
			last = c.LastUpdated

			select {
			case views <- m.render(sessionID, c):
			case <-ctx.Done():
				return
			}
		}
	}()

	return views, nil
}

// save persists items. The in-memory items stay authoritative when the write fails.
func (m *Manager) save(ctx context.Context, sessionID, key string, items []Line) *Result {
	c, err := m.store.Save(ctx, key, items)
	return &Result{Cart: m.render(sessionID, c), Persisted: err == nil}
}

func (m *Manager) render(sessionID string, c Cart) View {
	m.forgetIfEmpty(sessionID, c.Items)
	return NewView(c, m.Summarize(sessionID, c.Items), m.limits.MaxPerLine)
}

// forgetIfEmpty drops the promo of a cart that was emptied or expired
func (m *Manager) forgetIfEmpty(sessionID string, items []Line) {
	if len(items) == 0 {
		m.applied.Delete(sessionID)
	}
}

func (m *Manager) limitNotice(limit error) *notify.Notice {
	switch {
	case errors.Is(limit, ErrCartFull):
		return m.notifier.Warning(fmt.Sprintf("Maximum %d items allowed", m.limits.MaxTotal))
	case errors.Is(limit, ErrLineFull):
		return m.notifier.Warning(fmt.Sprintf("Maximum %d per item", m.limits.MaxPerLine))
	}
	return nil
}
