// internal/domain/product/entity.go
package product

import (
	"errors"

	"github.com/petalline/storefront/internal/pkg/display"
)

var (
	// ErrProductNotFound is returned when an id is not in the catalog
	ErrProductNotFound = errors.New("product not found")
	// ErrPageOutOfRange is returned for a page outside 1..TotalPages
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrInvalidQuantity is returned when a stepper value is outside its bounds
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Product represents a catalog entry. Products are immutable once the catalog is built.
type Product struct {
	ID            int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Price         float64   `gorm:"not null" json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Image         string    `gorm:"size:500" json:"image"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Description   string    `gorm:"type:text" json:"description"`
	Benefits      []Benefit `gorm:"serializer:json;type:jsonb" json:"benefits"`
	Category      string    `gorm:"size:100;index" json:"category"`
	OnSale        bool      `gorm:"default:false" json:"onSale"`
	Discount      int       `json:"discount"`
}

// Benefit is one highlighted selling point shown in the detail overlay
type Benefit struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// TableName sets the catalog table name
func (Product) TableName() string {
	return "catalog_products"
}

// IsDiscounted reports whether the product carries a higher original price
func (p Product) IsDiscounted() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded percentage off the original price, 0 when not discounted
func (p Product) DiscountPercent() int {
	if !p.IsDiscounted() {
		return 0
	}
	return display.DiscountPercent(p.Price, *p.OriginalPrice)
}
