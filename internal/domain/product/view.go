// internal/domain/product/view.go
package product

import (
	"fmt"

	"github.com/petalline/storefront/internal/pkg/display"
)

// CardView is the grid card view-model
type CardView struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	PriceLabel    string   `json:"priceLabel"`
	OriginalLabel string   `json:"originalPriceLabel,omitempty"`
	SaleBadge     string   `json:"saleBadge,omitempty"`
	Stars         []string `json:"stars"`
	ReviewsLabel  string   `json:"reviewsLabel"`
	Quantity      int      `json:"quantity"`
}

// DetailView is the product detail overlay view-model
type DetailView struct {
	CardView
	Description string    `json:"description"`
	Benefits    []Benefit `json:"benefits"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Discount    int       `json:"discountPercent"`
	ReturnFocus string    `json:"returnFocus,omitempty"`
}

// GridView is one rendered grid page
type GridView struct {
	*Page
	Cards []CardView `json:"products"`
}

// NewCardView renders a product card with the visitor's stepper quantity
func NewCardView(p Product, quantity int) CardView {
	view := CardView{
		ID:           p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Category:     p.Category,
		Price:        p.Price,
		PriceLabel:   display.MoneyFloat(p.Price),
		Stars:        display.Stars(p.Rating),
		ReviewsLabel: fmt.Sprintf("(%d reviews)", p.Reviews),
		Quantity:     quantity,
	}
	if p.IsDiscounted() {
		view.OriginalLabel = display.MoneyFloat(*p.OriginalPrice)
	}
	if p.OnSale && p.Discount > 0 {
		view.SaleBadge = fmt.Sprintf("-%d%%", p.Discount)
	}
	return view
}

// NewDetailView renders the overlay. The overlay starts its own stepper at 1.
func NewDetailView(p Product, returnFocus string) DetailView {
	return DetailView{
		CardView:    NewCardView(p, 1),
		Description: p.Description,
		Benefits:    p.Benefits,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Discount:    p.DiscountPercent(),
		ReturnFocus: returnFocus,
	}
}

// NewGridView renders a page of cards; quantity looks up each card's stepper value
func NewGridView(page *Page, quantity func(id int) int) GridView {
	cards := make([]CardView, 0, len(page.Products))
	for _, p := range page.Products {
		cards = append(cards, NewCardView(p, quantity(p.ID)))
	}
	return GridView{Page: page, Cards: cards}
}
