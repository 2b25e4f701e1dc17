// internal/domain/product/stepper.go
package product

import (
	"fmt"
	"time"

	"github.com/petalline/storefront/internal/pkg/expiry"
)

// Stepper bounds
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Steppers keeps each visitor's grid quantity per product. Values default to
// MinQuantity and are independent of the detail overlay's stepper. A value
// left untouched for the session ttl is forgotten.
type Steppers struct {
	values *expiry.Map[stepperKey, int]
}

type stepperKey struct {
	session string
	product int
}

// NewSteppers creates an empty stepper registry
func NewSteppers(ttl time.Duration) *Steppers {
	return newSteppersWithClock(ttl, time.Now)
}

func newSteppersWithClock(ttl time.Duration, now func() time.Time) *Steppers {
	return &Steppers{values: expiry.NewMapWithClock[stepperKey, int](ttl, now)}
}

// Get returns the stepper value for a product
func (s *Steppers) Get(sessionID string, productID int) int {
	if q, ok := s.values.Get(stepperKey{sessionID, productID}); ok {
		return q
	}
	return MinQuantity
}

// Lookup returns a getter bound to one session
func (s *Steppers) Lookup(sessionID string) func(productID int) int {
	return func(productID int) int {
		return s.Get(sessionID, productID)
	}
}

// Increase steps up unless already at MaxQuantity
func (s *Steppers) Increase(sessionID string, productID int) int {
	return s.step(sessionID, productID, 1)
}

// Decrease steps down unless already at MinQuantity
func (s *Steppers) Decrease(sessionID string, productID int) int {
	return s.step(sessionID, productID, -1)
}

// Set stores a typed value. Out-of-range values are rejected and the previous value kept.
func (s *Steppers) Set(sessionID string, productID, quantity int) (int, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return s.Get(sessionID, productID), fmt.Errorf("quantity %d: %w", quantity, ErrInvalidQuantity)
	}
	s.values.Set(stepperKey{sessionID, productID}, quantity)
	return quantity, nil
}

// Reset returns a product's stepper to MinQuantity
func (s *Steppers) Reset(sessionID string, productID int) {
	s.values.Delete(stepperKey{sessionID, productID})
}

// Len returns the number of stored non-default values
func (s *Steppers) Len() int {
	return s.values.Len()
}

func (s *Steppers) step(sessionID string, productID, delta int) int {
	return s.values.Update(stepperKey{sessionID, productID}, func(q int, ok bool) (int, bool) {
		if !ok {
			q = MinQuantity
		}
		if next := q + delta; next >= MinQuantity && next <= MaxQuantity {
			q = next
		}
		return q, q != MinQuantity
	})
}
