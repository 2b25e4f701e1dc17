// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/petalline/storefront/internal/domain/cart"
	"github.com/petalline/storefront/internal/domain/order"
	"github.com/sirupsen/logrus"
)

// OrderFailedMessage is shown when submission fails; the cart is kept for a retry
const OrderFailedMessage = "There was an error processing your order. Please try again or contact support."

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrInvalidForm = errors.New("invalid checkout form")
	ErrOrderFailed = errors.New(OrderFailedMessage)
)

// TimeSlotOption is one selectable delivery band
type TimeSlotOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Review is the order review shown on the checkout page
type Review struct {
	Items           []cart.LineView  `json:"items"`
	Summary         cart.SummaryView `json:"summary"`
	Promo           *cart.PromoView  `json:"promo,omitempty"`
	MinDeliveryDate string           `json:"minDeliveryDate"`
	TimeSlots       []TimeSlotOption `json:"timeSlots"`
}

// Service handles the checkout flow
type Service struct {
	carts     *cart.Manager
	submitter order.Submitter
	validator *Validator
	logger    logrus.FieldLogger
	now       func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewService creates a new checkout service
func NewService(carts *cart.Manager, submitter order.Submitter, logger logrus.FieldLogger) *Service {
	s := &Service{
		carts:     carts,
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.validator = NewValidator(func() time.Time { return s.now() })
	return s
}

// Review snapshots the cart once. An empty cart yields ErrEmptyCart.
func (s *Service) Review(ctx context.Context, sessionID string) (*Review, error) {
	c, summary := s.carts.Snapshot(ctx, sessionID)
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	view := cart.NewView(c, summary, s.carts.Limits().MaxPerLine)

	slots := make([]TimeSlotOption, 0, len(order.TimeSlots()))
	for _, slot := range order.TimeSlots() {
		slots = append(slots, TimeSlotOption{Value: slot, Label: order.TimeSlotLabel(slot)})
	}

	return &Review{
		Items:           view.Items,
		Summary:         view.Summary,
		Promo:           view.Promo,
		MinDeliveryDate: Tomorrow(s.now()).Format(dateLayout),
		TimeSlots:       slots,
	}, nil
}

// Validate checks a form without placing an order
func (s *Service) Validate(f *Form) error {
	return s.validator.Validate(f)
}

// PlaceOrder validates the form, submits the order and clears the cart.
// A failed submission keeps the cart so the visitor can retry.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, f *Form) (*order.Confirmation, error) {
	c, summary := s.carts.Snapshot(ctx, sessionID)
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.validator.Validate(f); err != nil {
		return nil, err
	}

	o := s.buildOrder(c, summary, f)

	if err := s.submitter.Submit(ctx, o); err != nil {
		s.logger.WithFields(logrus.Fields{
			"order_number": o.Number,
			"session_id":   sessionID,
			"error":        err.Error(),
		}).Error("Order processing error")
		return nil, ErrOrderFailed
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"order_number": o.Number,
			"error":        err.Error(),
		}).Warn("Failed to clear cart after order")
	}

	s.logger.WithFields(logrus.Fields{
		"order_number": o.Number,
		"items":        summary.ItemCount,
		"total":        o.Summary.Total,
	}).Info("Order placed")

	confirmation := order.NewConfirmation(o)
	return &confirmation, nil
}

func (s *Service) buildOrder(c cart.Cart, summary cart.Summary, f *Form) *order.Order {
	now := s.now()

	s.mu.Lock()
	number := order.NewNumber(now, s.rnd)
	s.mu.Unlock()

	o := &order.Order{
		Number:    number,
		Customer:  f.customer(),
		Delivery:  f.delivery(),
		Payment:   f.payment(),
		Gift:      f.gift(),
		Items:     append([]cart.Line(nil), c.Items...),
		Summary:   cart.NewSummaryView(summary),
		CreatedAt: now,
	}
	if summary.Promo != nil && !summary.PromoSuspended {
		o.PromoCode = summary.Promo.Code
	}
	return o
}
