// internal/domain/order/confirmation.go
package order

import (
	"fmt"

	"github.com/petalline/storefront/internal/domain/cart"
	"github.com/petalline/storefront/internal/pkg/display"
	"github.com/shopspring/decimal"
)

// dateLayout matches a US locale date-time string
const dateLayout = "1/2/2006, 3:04:05 PM"

// ItemView is one item row of the confirmation
type ItemView struct {
	Name           string `json:"name"`
	Image          string `json:"image"`
	QuantityLabel  string `json:"quantityLabel"`
	LineTotalLabel string `json:"lineTotalLabel"`
}

// GiftView is the gift block of the confirmation
type GiftView struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// Confirmation is the view-model shown once after a successful order
type Confirmation struct {
	OrderNumber    string           `json:"orderNumber"`
	Date           string           `json:"date"`
	CustomerName   string           `json:"customerName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	DeliveryMethod string           `json:"deliveryMethod"`
	Address        string           `json:"address,omitempty"`
	Instructions   string           `json:"instructions,omitempty"`
	DeliveryDate   string           `json:"deliveryDate"`
	TimeSlot       string           `json:"timeSlot"`
	PaymentMethod  string           `json:"paymentMethod"`
	CardMasked     string           `json:"card,omitempty"`
	CardExpiry     string           `json:"expires,omitempty"`
	Items          []ItemView       `json:"items"`
	Summary        cart.SummaryView `json:"summary"`
	PromoCode      string           `json:"promoCode,omitempty"`
	Gift           *GiftView        `json:"gift,omitempty"`
}

// NewConfirmation renders an order for display
func NewConfirmation(o *Order) Confirmation {
	c := Confirmation{
		OrderNumber:    o.Number,
		Date:           o.CreatedAt.Format(dateLayout),
		CustomerName:   o.Customer.FullName(),
		Email:          o.Customer.Email,
		Phone:          o.Customer.Phone,
		DeliveryMethod: DeliveryLabel(o.Delivery.Type),
		DeliveryDate:   o.Delivery.Date,
		TimeSlot:       TimeSlotLabel(o.Delivery.TimeSlot),
		PaymentMethod:  PaymentLabel(o.Payment.Method),
		Summary:        o.Summary,
		PromoCode:      o.PromoCode,
	}

	if o.Delivery.Type == DeliveryHome && o.Delivery.Address != nil {
		c.Address = AddressLine(o.Delivery.Address)
		c.Instructions = o.Delivery.Address.Instructions
	}

	if o.Payment.Method == PaymentCard && o.Payment.Card != nil {
		c.CardMasked = MaskCard(o.Payment.Card.Last4)
		c.CardExpiry = o.Payment.Card.ExpiryDate
	}

	c.Items = make([]ItemView, 0, len(o.Items))
	for _, item := range o.Items {
		price := decimal.NewFromFloat(item.Price)
		c.Items = append(c.Items, ItemView{
			Name:           item.Name,
			Image:          item.Image,
			QuantityLabel:  fmt.Sprintf("Qty: %d × %s", item.Quantity, display.Money(price)),
			LineTotalLabel: display.Money(price.Mul(decimal.NewFromInt(int64(item.Quantity)))),
		})
	}

	if o.Gift != nil {
		c.Gift = &GiftView{To: o.Gift.To, From: o.Gift.From, Message: o.Gift.Message}
	}

	return c
}
