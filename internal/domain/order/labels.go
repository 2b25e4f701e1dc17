// internal/domain/order/labels.go
package order

import "strings"

var timeSlotLabels = map[string]string{
	"9-12":  "9:00 AM - 12:00 PM",
	"12-15": "12:00 PM - 3:00 PM",
	"15-18": "3:00 PM - 6:00 PM",
	"18-21": "6:00 PM - 9:00 PM",
}

// TimeSlots returns the accepted delivery time slot values
func TimeSlots() []string {
	return []string{"9-12", "12-15", "15-18", "18-21"}
}

// TimeSlotLabel formats a slot value; unknown values are returned as-is
func TimeSlotLabel(slot string) string {
	if label, ok := timeSlotLabels[slot]; ok {
		return label
	}
	return slot
}

// PaymentLabel returns the display name of a payment method
func PaymentLabel(method PaymentMethod) string {
	switch method {
	case PaymentCard:
		return "Credit/Debit Card"
	case PaymentPayPal:
		return "PayPal"
	case PaymentApple:
		return "Apple Pay"
	case PaymentCOD:
		return "Cash on Delivery"
	default:
		return string(method)
	}
}

// DeliveryLabel returns the display name of a delivery type
func DeliveryLabel(t DeliveryType) string {
	if t == DeliveryHome {
		return "Home Delivery"
	}
	return "Store Pickup"
}

// MaskCard renders the last four digits behind a fixed mask
func MaskCard(last4 string) string {
	return "**** **** **** " + last4
}

// AddressLine joins an address as "street, city, state zip"
func AddressLine(a *Address) string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a.Street + ", " + a.City + ", " + a.State + " " + a.ZipCode)
}
