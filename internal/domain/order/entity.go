// internal/domain/order/entity.go
package order

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/petalline/storefront/internal/domain/cart"
)

// ErrSubmissionFailed is returned when an order could not be handed off
var ErrSubmissionFailed = errors.New("order submission failed")

// DeliveryType is how the order reaches the customer
type DeliveryType string

const (
	DeliveryHome   DeliveryType = "home"
	DeliveryPickup DeliveryType = "pickup"
)

// PaymentMethod is how the customer pays
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentApple  PaymentMethod = "apple"
	PaymentCOD    PaymentMethod = "cod"
)

// Customer holds contact details
type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// FullName returns first and last name
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Address is a delivery or billing address
type Address struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Instructions string `json:"instructions,omitempty"`
}

// Delivery holds the delivery selection. Address is set only for home delivery.
type Delivery struct {
	Type     DeliveryType `json:"type"`
	Address  *Address     `json:"address,omitempty"`
	Date     string       `json:"date"`
	TimeSlot string       `json:"time"`
}

// Card holds what is kept of card details; the full number and CVV are never stored
type Card struct {
	Last4          string   `json:"last4"`
	Brand          string   `json:"brand,omitempty"`
	ExpiryDate     string   `json:"expiryDate"`
	CardName       string   `json:"cardName"`
	BillingAddress *Address `json:"billingAddress,omitempty"`
}

// Payment holds the payment selection. Card is set only when paying by card.
type Payment struct {
	Method PaymentMethod `json:"method"`
	Card   *Card         `json:"details,omitempty"`
}

// Gift is the optional gift message block
type Gift struct {
	Message string `json:"message"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Order is built at checkout, submitted, shown once and discarded
type Order struct {
	Number    string           `json:"orderNumber"`
	Customer  Customer         `json:"customer"`
	Delivery  Delivery         `json:"delivery"`
	Payment   Payment          `json:"payment"`
	Gift      *Gift            `json:"gift,omitempty"`
	Items     []cart.Line      `json:"items"`
	Summary   cart.SummaryView `json:"summary"`
	PromoCode string           `json:"promoCode,omitempty"`
	CreatedAt time.Time        `json:"timestamp"`
}

// NewNumber generates an order number: FL-<year>-<last 6 digits of epoch millis><0..999>
func NewNumber(now time.Time, rnd *rand.Rand) string {
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return fmt.Sprintf("FL-%d-%s%d", now.Year(), ts, rnd.Intn(1000))
}
