// internal/domain/checkout/form.go
package checkout

import "github.com/petalline/storefront/internal/domain/order"

// Form is the submitted checkout form
type Form struct {
	Email     string `json:"email" validate:"required,contact_email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required,phone"`

	DeliveryType         string `json:"deliveryType" validate:"required,oneof=home pickup"`
	Address              string `json:"address" validate:"required_if=DeliveryType home"`
	City                 string `json:"city" validate:"required_if=DeliveryType home"`
	State                string `json:"state" validate:"required_if=DeliveryType home"`
	ZipCode              string `json:"zipCode" validate:"required_if=DeliveryType home"`
	DeliveryInstructions string `json:"deliveryInstructions"`
	DeliveryDate         string `json:"deliveryDate" validate:"required,datetime=2006-01-02"`
	DeliveryTime         string `json:"deliveryTime" validate:"required,oneof=9-12 12-15 15-18 18-21"`

	PaymentMethod  string `json:"paymentMethod" validate:"required,oneof=card paypal apple cod"`
	CardNumber     string `json:"cardNumber" validate:"required_if=PaymentMethod card"`
	ExpiryDate     string `json:"expiryDate" validate:"required_if=PaymentMethod card"`
	CVV            string `json:"cvv" validate:"required_if=PaymentMethod card"`
	CardName       string `json:"cardName" validate:"required_if=PaymentMethod card"`
	// SameAsDelivery defaults to true when omitted
	SameAsDelivery *bool  `json:"sameAsDelivery"`
	BillingAddress string `json:"billingAddress"`
	BillingCity    string `json:"billingCity"`
	BillingState   string `json:"billingState"`
	BillingZip     string `json:"billingZip"`

	IsGift      bool   `json:"isGift"`
	GiftMessage string `json:"giftMessage" validate:"max=500"`
	GiftFrom    string `json:"giftFrom"`
	GiftTo      string `json:"giftTo"`

	TermsAccepted bool `json:"termsAccepted" validate:"required"`
}

func (f *Form) sameAsDelivery() bool {
	return f.SameAsDelivery == nil || *f.SameAsDelivery
}

// needsBilling reports whether a separate billing address must be entered.
// Pickup orders have no delivery address to copy, so none is required.
func (f *Form) needsBilling() bool {
	return f.PaymentMethod == string(order.PaymentCard) &&
		f.DeliveryType == string(order.DeliveryHome) &&
		!f.sameAsDelivery()
}

func (f *Form) customer() order.Customer {
	return order.Customer{
		Email:     f.Email,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Phone:     f.Phone,
	}
}

func (f *Form) delivery() order.Delivery {
	d := order.Delivery{
		Type:     order.DeliveryType(f.DeliveryType),
		Date:     f.DeliveryDate,
		TimeSlot: f.DeliveryTime,
	}
	if d.Type == order.DeliveryHome {
		d.Address = &order.Address{
			Street:       f.Address,
			City:         f.City,
			State:        f.State,
			ZipCode:      f.ZipCode,
			Instructions: f.DeliveryInstructions,
		}
	}
	return d
}

// payment keeps only the last four digits and the brand of a card
func (f *Form) payment() order.Payment {
	p := order.Payment{Method: order.PaymentMethod(f.PaymentMethod)}
	if p.Method != order.PaymentCard {
		return p
	}

	digits := onlyDigits(f.CardNumber)
	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}

	p.Card = &order.Card{
		Last4:      last4,
		Brand:      DetectBrand(digits),
		ExpiryDate: f.ExpiryDate,
		CardName:   f.CardName,
	}
	if !f.sameAsDelivery() && f.BillingAddress != "" {
		p.Card.BillingAddress = &order.Address{
			Street:  f.BillingAddress,
			City:    f.BillingCity,
			State:   f.BillingState,
			ZipCode: f.BillingZip,
		}
	}
	return p
}

func (f *Form) gift() *order.Gift {
	if !f.IsGift {
		return nil
	}
	return &order.Gift{Message: f.GiftMessage, From: f.GiftFrom, To: f.GiftTo}
}
