// internal/domain/checkout/format.go
package checkout

import (
	"regexp"
	"strings"
)

// Card brands
const (
	BrandVisa       = "visa"
	BrandMastercard = "mastercard"
	BrandAmex       = "amex"
)

var (
	visaPattern       = regexp.MustCompile(`^4`)
	mastercardPattern = regexp.MustCompile(`^5[1-5]`)
	amexPattern       = regexp.MustCompile(`^3[47]`)
)

// FormatRequest carries raw card input as typed
type FormatRequest struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Formatted is the normalized card input
type Formatted struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	Brand      string `json:"brand"`
}

// Format normalizes all card inputs at once
func Format(req FormatRequest) Formatted {
	number := FormatCardNumber(req.CardNumber)
	return Formatted{
		CardNumber: number,
		ExpiryDate: FormatExpiry(req.ExpiryDate),
		CVV:        FormatCVV(req.CVV),
		Brand:      DetectBrand(number),
	}
}

// FormatCardNumber keeps at most 16 digits, grouped in blocks of four
func FormatCardNumber(raw string) string {
	digits := truncate(onlyDigits(raw), 16)

	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	if digits != "" {
		groups = append(groups, digits)
	}
	return strings.Join(groups, " ")
}

// FormatExpiry keeps at most 4 digits and inserts a slash after the month
func FormatExpiry(raw string) string {
	digits := truncate(onlyDigits(raw), 4)
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// FormatCVV keeps at most 4 digits
func FormatCVV(raw string) string {
	return truncate(onlyDigits(raw), 4)
}

// DetectBrand identifies the card brand from its leading digits; unknown brands yield ""
func DetectBrand(number string) string {
	digits := onlyDigits(number)
	switch {
	case visaPattern.MatchString(digits):
		return BrandVisa
	case mastercardPattern.MatchString(digits):
		return BrandMastercard
	case amexPattern.MatchString(digits):
		return BrandAmex
	}
	return ""
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
