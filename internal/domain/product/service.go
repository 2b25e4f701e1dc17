// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"
	"time"

	"github.com/petalline/storefront/internal/domain/cart"
	"github.com/sirupsen/logrus"
)

// Stepper actions
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

// Service handles product browsing and appending products to the cart
type Service struct {
	catalog  *Catalog
	steppers *Steppers
	carts    *cart.Manager
	cartPath string
	logger   logrus.FieldLogger
	now      func() time.Time
}

// NewService creates a new product service
func NewService(catalog *Catalog, steppers *Steppers, carts *cart.Manager, cartPath string, logger logrus.FieldLogger) *Service {
	return &Service{
		catalog:  catalog,
		steppers: steppers,
		carts:    carts,
		cartPath: cartPath,
		logger:   logger,
		now:      time.Now,
	}
}

// AddResult is returned by add-to-cart actions
type AddResult struct {
	*cart.Result
	Quantity int    `json:"quantity"`
	Redirect string `json:"redirect,omitempty"`
}

// CartLine converts a product into a cart line
func (p Product) CartLine(quantity int, now time.Time) cart.Line {
	return cart.Line{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Quantity:      quantity,
		Image:         p.Image,
		Category:      p.Category,
		Rating:        p.Rating,
		Description:   p.Description,
		AddedAt:       now.UnixMilli(),
	}
}

// Catalog returns the underlying catalog
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Grid renders a catalog page with the visitor's stepper values
func (s *Service) Grid(sessionID string, page int, category string) (*GridView, error) {
	p, err := s.catalog.Page(page, category)
	if err != nil {
		return nil, err
	}
	view := NewGridView(p, s.steppers.Lookup(sessionID))
	return &view, nil
}

// Detail renders the detail overlay for a product
func (s *Service) Detail(id int, returnFocus string) (*DetailView, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	view := NewDetailView(p, returnFocus)
	return &view, nil
}

// Categories returns the catalog categories
func (s *Service) Categories() []string {
	return s.catalog.Categories()
}

// StepQuantity moves a grid stepper up or down by one
func (s *Service) StepQuantity(sessionID string, id int, action string) (int, error) {
	if _, err := s.catalog.Get(id); err != nil {
		return 0, err
	}

	switch action {
	case ActionIncrease:
		return s.steppers.Increase(sessionID, id), nil
	case ActionDecrease:
		return s.steppers.Decrease(sessionID, id), nil
	default:
		return 0, fmt.Errorf("unknown stepper action %q", action)
	}
}

// SetQuantity stores a typed grid stepper value
func (s *Service) SetQuantity(sessionID string, id, quantity int) (int, error) {
	if _, err := s.catalog.Get(id); err != nil {
		return 0, err
	}
	return s.steppers.Set(sessionID, id, quantity)
}

// AddToCart adds the grid stepper quantity of a product and resets the stepper
func (s *Service) AddToCart(ctx context.Context, sessionID string, id int) (*AddResult, error) {
	return s.add(ctx, sessionID, id, s.steppers.Get(sessionID, id))
}

// AddFromDetail adds the overlay's own quantity. Buy-now also points the client at the cart page.
func (s *Service) AddFromDetail(ctx context.Context, sessionID string, id, quantity int, buyNow bool) (*AddResult, error) {
	if quantity < MinQuantity {
		quantity = MinQuantity
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	result, err := s.add(ctx, sessionID, id, quantity)
	if err != nil {
		return nil, err
	}
	if buyNow {
		result.Redirect = s.cartPath
	}
	return result, nil
}

func (s *Service) add(ctx context.Context, sessionID string, id, quantity int) (*AddResult, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	result, err := s.carts.Add(ctx, sessionID, p.CartLine(quantity, s.now()))
	if err != nil {
		s.logger.WithFields(logrus.Fields{"product_id": id, "error": err.Error()}).Error("Failed to add item to cart")
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}

	if result.Added > 0 {
		s.steppers.Reset(sessionID, id)
	}

	return &AddResult{
		Result:   result,
		Quantity: s.steppers.Get(sessionID, id),
	}, nil
}
