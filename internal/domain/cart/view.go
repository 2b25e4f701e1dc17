// internal/domain/cart/view.go
package cart

import (
	"fmt"

	"github.com/petalline/storefront/internal/pkg/display"
	"github.com/shopspring/decimal"
)

const (
	defaultRating      = 4.5
	defaultDescription = "Beautiful floral arrangement"
)

// LineView is a rendered cart line
type LineView struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	Category       string   `json:"category,omitempty"`
	Description    string   `json:"description"`
	Quantity       int      `json:"quantity"`
	MaxQuantity    int      `json:"maxQuantity"`
	Price          float64  `json:"price"`
	UnitPriceLabel string   `json:"unitPriceLabel"`
	LineTotal      float64  `json:"lineTotal"`
	LineTotalLabel string   `json:"lineTotalLabel"`
	WasLabel       string   `json:"wasLabel,omitempty"`
	DiscountBadge  string   `json:"discountBadge,omitempty"`
	Stars          []string `json:"stars"`
	RatingLabel    string   `json:"ratingLabel"`
}

// SummaryView is the rounded, labelled summary
type SummaryView struct {
	ItemCount      int     `json:"itemCount"`
	ItemCountLabel string  `json:"itemCountLabel"`
	Subtotal       float64 `json:"subtotal"`
	SubtotalLabel  string  `json:"subtotalLabel"`
	ItemDiscount   float64 `json:"itemDiscount"`
	PromoDiscount  float64 `json:"promoDiscount"`
	Discount       float64 `json:"discount"`
	DiscountLabel  string  `json:"discountLabel"`
	ShowDiscount   bool    `json:"showDiscount"`
	Shipping       float64 `json:"shipping"`
	ShippingLabel  string  `json:"shippingLabel"`
	Tax            float64 `json:"tax"`
	TaxLabel       string  `json:"taxLabel"`
	Total          float64 `json:"total"`
	TotalLabel     string  `json:"totalLabel"`
}

// PromoView describes the session's promo state
type PromoView struct {
	Code      string `json:"code"`
	Percent   int    `json:"percent"`
	Locked    bool   `json:"locked"`
	Suspended bool   `json:"suspended"`
	MinAmount string `json:"minAmount"`
}

// View is the full cart view-model. Empty hides the populated cart.
type View struct {
	Items       []LineView  `json:"items"`
	Summary     SummaryView `json:"summary"`
	Promo       *PromoView  `json:"promo,omitempty"`
	Empty       bool        `json:"empty"`
	CountLabel  string      `json:"countLabel"`
	LastUpdated int64       `json:"lastUpdated"`
}

// NewLineView renders one line
func NewLineView(l Line, maxPerLine int) LineView {
	rating := l.Rating
	if rating == 0 {
		rating = defaultRating
	}
	description := l.Description
	if description == "" {
		description = defaultDescription
	}

	qty := decimal.NewFromInt(int64(l.Quantity))
	lineTotal := decimal.NewFromFloat(l.Price).Mul(qty)

	view := LineView{
		ID:             l.ID,
		Name:           l.Name,
		Image:          l.Image,
		Category:       l.Category,
		Description:    description,
		Quantity:       l.Quantity,
		MaxQuantity:    maxPerLine,
		Price:          l.Price,
		UnitPriceLabel: fmt.Sprintf("%s each", display.Money(decimal.NewFromFloat(l.Price))),
		LineTotal:      display.Round(lineTotal),
		LineTotalLabel: display.Money(lineTotal),
		Stars:          display.Stars(rating),
		RatingLabel:    fmt.Sprintf("(%v)", rating),
	}

	if l.OriginalPrice != nil {
		was := decimal.NewFromFloat(*l.OriginalPrice).Mul(qty)
		view.WasLabel = "Was: " + display.Money(was)
		view.DiscountBadge = fmt.Sprintf("%d%% OFF", display.DiscountPercent(l.Price, *l.OriginalPrice))
	}

	return view
}

// NewSummaryView rounds and labels a summary
func NewSummaryView(s Summary) SummaryView {
	discount := s.Discount()
	view := SummaryView{
		ItemCount:      s.ItemCount,
		ItemCountLabel: fmt.Sprintf("Subtotal (%d items)", s.ItemCount),
		Subtotal:       display.Round(s.Subtotal),
		SubtotalLabel:  display.Money(s.Subtotal),
		ItemDiscount:   display.Round(s.ItemDiscount),
		PromoDiscount:  display.Round(s.PromoDiscount),
		Discount:       display.Round(discount),
		DiscountLabel:  "-" + display.Money(discount),
		ShowDiscount:   discount.IsPositive(),
		Shipping:       display.Round(s.Shipping),
		ShippingLabel:  display.Money(s.Shipping),
		Tax:            display.Round(s.Tax),
		TaxLabel:       display.Money(s.Tax),
		Total:          display.Round(s.Total),
		TotalLabel:     display.Money(s.Total),
	}
	if s.Shipping.IsZero() {
		view.ShippingLabel = "Free"
	}
	return view
}

// NewView renders a cart record with its summary
func NewView(c Cart, s Summary, maxPerLine int) View {
	items := make([]LineView, 0, len(c.Items))
	for _, l := range c.Items {
		items = append(items, NewLineView(l, maxPerLine))
	}

	view := View{
		Items:       items,
		Summary:     NewSummaryView(s),
		Empty:       len(c.Items) == 0,
		CountLabel:  fmt.Sprintf("%d items", s.ItemCount),
		LastUpdated: c.LastUpdated,
	}

	if s.Promo != nil {
		view.Promo = &PromoView{
			Code:      s.Promo.Code,
			Percent:   s.Promo.Percent(),
			Locked:    true,
			Suspended: s.PromoSuspended,
			MinAmount: display.Money(s.Promo.MinAmount),
		}
	}

	return view
}
