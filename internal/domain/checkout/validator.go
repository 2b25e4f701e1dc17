// internal/domain/checkout/validator.go
package checkout

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/petalline/storefront/internal/domain/order"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern  = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	phoneNoise    = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

const (
	minPhoneLength = 10
	minCardDigits  = 13
	minCVVDigits   = 3
	dateLayout     = "2006-01-02"
)

var fieldMessages = map[string]string{
	"required":      "This field is required",
	"required_if":   "This field is required",
	"contact_email": "Please enter a valid email address",
	"phone":         "Please enter a valid phone number",
	"oneof":         "Please choose one of the available options",
	"datetime":      "Please enter a valid date",
	"min_date":      "Delivery date must be tomorrow or later",
	"card_number":   "Please enter a valid card number",
	"card_expiry":   "Please enter a valid expiry date (MM/YY)",
	"card_cvv":      "Please enter a valid CVV",
	"max":           "This field is too long",
}

const termsMessage = "Please accept the Terms and Conditions to proceed."

// FieldError is one rejected form field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of a form
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "Please fill in all required fields correctly."
}

// Unwrap lets callers match ErrInvalidForm
func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}

// Field returns the error for one field, if any
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}

// Validator checks checkout forms. Field names in errors are the JSON names.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewValidator creates a new form validator
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{validate: validator.New(), now: now}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func
	_ = v.validate.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})

	v.validate.RegisterStructValidation(v.formRules, Form{})
	return v
}

// ValidPhone strips spaces, dashes and parentheses before matching
func ValidPhone(raw string) bool {
	clean := phoneNoise.Replace(raw)
	return phonePattern.MatchString(clean) && len(clean) >= minPhoneLength
}

// Validate returns a *ValidationError when the form is rejected
func (v *Validator) Validate(f *Form) error {
	err := v.validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	seen := make(map[string]bool)
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return out
}

// formRules holds checks that depend on other fields or on the clock
func (v *Validator) formRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(Form)

	if f.PaymentMethod == string(order.PaymentCard) {
		if f.CardNumber != "" && len(onlyDigits(f.CardNumber)) < minCardDigits {
			sl.ReportError(f.CardNumber, "cardNumber", "CardNumber", "card_number", "")
		}
		if f.ExpiryDate != "" && !expiryPattern.MatchString(f.ExpiryDate) {
			sl.ReportError(f.ExpiryDate, "expiryDate", "ExpiryDate", "card_expiry", "")
		}
		if f.CVV != "" && len(onlyDigits(f.CVV)) < minCVVDigits {
			sl.ReportError(f.CVV, "cvv", "CVV", "card_cvv", "")
		}
	}

	if f.needsBilling() {
		billing := []struct {
			value, json, name string
		}{
			{f.BillingAddress, "billingAddress", "BillingAddress"},
			{f.BillingCity, "billingCity", "BillingCity"},
			{f.BillingState, "billingState", "BillingState"},
			{f.BillingZip, "billingZip", "BillingZip"},
		}
		for _, b := range billing {
			if b.value == "" {
				sl.ReportError(b.value, b.json, b.name, "required_if", "")
			}
		}
	}

	if f.DeliveryDate != "" {
		now := v.now()
		date, err := time.ParseInLocation(dateLayout, f.DeliveryDate, now.Location())
		if err == nil && date.Before(Tomorrow(now)) {
			sl.ReportError(f.DeliveryDate, "deliveryDate", "DeliveryDate", "min_date", "")
		}
	}
}

// Tomorrow returns midnight of the day after now
func Tomorrow(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

func messageFor(fe validator.FieldError) string {
	if fe.Field() == "termsAccepted" {
		return termsMessage
	}
	if msg, ok := fieldMessages[fe.Tag()]; ok {
		return msg
	}
	return "This field is invalid"
}
