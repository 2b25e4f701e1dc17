// internal/domain/cart/entity.go
package cart

import "errors"

var (
	// ErrNotFound is returned by a Storage when the key holds no record
	ErrNotFound = errors.New("cart record not found")
	// ErrLineNotFound is returned when a mutation names a product not in the cart
	ErrLineNotFound = errors.New("cart line not found")
	// ErrCartFull is returned when an add cannot fit any more units
	ErrCartFull = errors.New("cart is full")
	// ErrLineFull is returned when a line is already at its per-item cap
	ErrLineFull = errors.New("cart line is at its maximum quantity")
	// ErrInvalidPromo is returned for an unknown promo code
	ErrInvalidPromo = errors.New("invalid promo code")
	// ErrPromoBelowMinimum is returned when the subtotal does not qualify for a code
	ErrPromoBelowMinimum = errors.New("subtotal below promo minimum")
	// ErrPromoLocked is returned when a promo is already applied to the session
	ErrPromoLocked = errors.New("promo code already applied")
)

// Line is one product entry in the cart, persisted as part of the cart record
type Line struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Quantity      int      `json:"quantity"`
	Image         string   `json:"image"`
	Category      string   `json:"category,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Description   string   `json:"description,omitempty"`
	AddedAt       int64    `json:"addedAt,omitempty"` // epoch millis
}

// Cart is the single record stored per visitor
type Cart struct {
	Items       []Line `json:"items"`
	LastUpdated int64  `json:"lastUpdated"` // epoch millis
}

// Change is delivered to subscribers after a cart record is written.
// Local changes carry the new items; remote ones carry only the key.
type Change struct {
	Key         string `json:"key"`
	Items       []Line `json:"cartItems,omitempty"`
	LastUpdated int64  `json:"lastUpdated,omitempty"`
	Local       bool   `json:"local"`
}
