// internal/domain/cart/pricing.go
package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Promo is a discount code with a minimum qualifying subtotal
type Promo struct {
	Code      string
	Rate      decimal.Decimal
	MinAmount decimal.Decimal
}

// Percent returns the discount rate as a whole percentage
func (p Promo) Percent() int {
	return int(p.Rate.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// PromoTable maps upper-case codes to promos
type PromoTable map[string]Promo

// DefaultPromos returns the storefront promo codes
func DefaultPromos() PromoTable {
	return PromoTable{
		"SAVE10":    {Code: "SAVE10", Rate: decimal.RequireFromString("0.10"), MinAmount: decimal.NewFromInt(50)},
		"WELCOME20": {Code: "WELCOME20", Rate: decimal.RequireFromString("0.20"), MinAmount: decimal.NewFromInt(75)},
		"FLOWERS15": {Code: "FLOWERS15", Rate: decimal.RequireFromString("0.15"), MinAmount: decimal.NewFromInt(60)},
	}
}

// Lookup matches a code case-insensitively
func (t PromoTable) Lookup(code string) (Promo, bool) {
	p, ok := t[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// Pricing holds the constants of the summary formula
type Pricing struct {
	TaxRate               decimal.Decimal
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	// RevalidatePromo drops the promo discount while the subtotal is below its minimum
	RevalidatePromo bool
}

// DefaultPricing returns the storefront tax and shipping constants
func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               decimal.RequireFromString("0.08"),
		ShippingFee:           decimal.RequireFromString("9.99"),
		FreeShippingThreshold: decimal.NewFromInt(100),
		RevalidatePromo:       true,
	}
}

// NewPricing builds pricing constants from configured floats
func NewPricing(taxRate, shippingFee, freeShippingThreshold float64, revalidate bool) Pricing {
	return Pricing{
		TaxRate:               decimal.NewFromFloat(taxRate),
		ShippingFee:           decimal.NewFromFloat(shippingFee),
		FreeShippingThreshold: decimal.NewFromFloat(freeShippingThreshold),
		RevalidatePromo:       revalidate,
	}
}

// Summary is the monetary breakdown of a set of lines. Values are unrounded.
type Summary struct {
	ItemCount      int
	Subtotal       decimal.Decimal
	ItemDiscount   decimal.Decimal
	PromoDiscount  decimal.Decimal
	Shipping       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	Promo          *Promo
	PromoSuspended bool
}

// Discount returns item and promo discounts combined
func (s Summary) Discount() decimal.Decimal {
	return s.ItemDiscount.Add(s.PromoDiscount)
}

// Subtotal returns Σ price×quantity
func Subtotal(lines []Line) decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return subtotal
}

// Compute turns lines and an optional promo into a summary. It is a pure function.
func (p Pricing) Compute(lines []Line, promo *Promo) Summary {
	summary := Summary{
		ItemCount:     Units(lines),
		Subtotal:      Subtotal(lines),
		ItemDiscount:  decimal.Zero,
		PromoDiscount: decimal.Zero,
		Promo:         promo,
	}

	for _, l := range lines {
		if l.OriginalPrice == nil {
			continue
		}
		diff := decimal.NewFromFloat(*l.OriginalPrice).Sub(decimal.NewFromFloat(l.Price))
		summary.ItemDiscount = summary.ItemDiscount.Add(diff.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if promo != nil {
		if p.RevalidatePromo && summary.Subtotal.LessThan(promo.MinAmount) {
			summary.PromoSuspended = true
		} else {
			summary.PromoDiscount = summary.Subtotal.Mul(promo.Rate)
		}
	}

	// Calculate shipping and tax
	summary.Shipping = p.ShippingFee
	if summary.Subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		summary.Shipping = decimal.Zero
	}

	taxable := summary.Subtotal.Sub(summary.Discount())
	summary.Tax = taxable.Mul(p.TaxRate)

	summary.Total = taxable.Add(summary.Shipping).Add(summary.Tax)
	if summary.Total.IsNegative() {
		summary.Total = decimal.Zero
	}

	return summary
}
