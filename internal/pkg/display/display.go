// internal/pkg/display/display.go
package display

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Star kinds used by rating views
const (
	StarFull  = "full"
	StarHalf  = "half"
	StarEmpty = "empty"
)

// Stars renders a 0-5 rating as star kinds: floor(rating) full,
// one half star for a fractional part, and the rest empty.
func Stars(rating float64) []string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	full := int(math.Floor(rating))
	half := rating-float64(full) > 0
	empty := 5 - int(math.Ceil(rating))

	stars := make([]string, 0, 5)
	for i := 0; i < full; i++ {
		stars = append(stars, StarFull)
	}
	if half {
		stars = append(stars, StarHalf)
	}
	for i := 0; i < empty; i++ {
		stars = append(stars, StarEmpty)
	}
	return stars
}

// DiscountPercent computes round((original-price)/original*100)
func DiscountPercent(price, original float64) int {
	if original <= 0 || original <= price {
		return 0
	}
	return int(math.Round((original - price) / original * 100))
}

// Money formats a dollar amount with two decimals
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// MoneyFloat formats a float dollar amount with two decimals
func MoneyFloat(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Round rounds to cents for presentation
func Round(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
