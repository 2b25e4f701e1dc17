// internal/domain/product/catalog.go
package product

import (
	"fmt"
	"strings"
)

// DefaultPageSize is the number of cards shown per grid page
const DefaultPageSize = 12

// Catalog is the fixed, in-memory product list built once at startup
type Catalog struct {
	products []Product
	index    map[int]int
	pageSize int
}

// NewCatalog creates a catalog over the given products, keeping their order
func NewCatalog(products []Product, pageSize int) *Catalog {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	items := make([]Product, len(products))
	copy(items, products)

	index := make(map[int]int, len(items))
	for i, p := range items {
		index[p.ID] = i
	}

	return &Catalog{
		products: items,
		index:    index,
		pageSize: pageSize,
	}
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}

// PageSize returns the configured page size
func (c *Catalog) PageSize() int {
	return c.pageSize
}

// Get returns the product with the given id
func (c *Catalog) Get(id int) (Product, error) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return c.products[i], nil
}

// All returns a copy of every product in display order
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the distinct categories in first-seen order
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// PageControl is one clickable pagination element
type PageControl struct {
	Page    int  `json:"page"`
	Current bool `json:"current"`
}

// Page is the visible slice of the grid plus its navigation state
type Page struct {
	Number     int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Total      int           `json:"total"`
	Start      int           `json:"start"`
	End        int           `json:"end"`
	Label      string        `json:"label"`
	Category   string        `json:"category,omitempty"`
	Products   []Product     `json:"-"`
	Controls   []PageControl `json:"controls"`
	HasPrev    bool          `json:"hasPrev"`
	HasNext    bool          `json:"hasNext"`
}

// Page returns the given 1-based page, optionally filtered by category (case-insensitive).
// An empty result set yields a single empty page.
func (c *Catalog) Page(number int, category string) (*Page, error) {
	products := c.products
	if category = strings.TrimSpace(category); category != "" {
		products = nil
		for _, p := range c.products {
			if strings.EqualFold(p.Category, category) {
				products = append(products, p)
			}
		}
	}

	total := len(products)
	totalPages := (total + c.pageSize - 1) / c.pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if number < 1 || number > totalPages {
		return nil, fmt.Errorf("page %d of %d: %w", number, totalPages, ErrPageOutOfRange)
	}

	start := (number - 1) * c.pageSize
	end := start + c.pageSize
	if end > total {
		end = total
	}

	visible := make([]Product, end-start)
	copy(visible, products[start:end])

	controls := make([]PageControl, totalPages)
	for i := range controls {
		controls[i] = PageControl{Page: i + 1, Current: i+1 == number}
	}

	page := &Page{
		Number:     number,
		TotalPages: totalPages,
		Total:      total,
		End:        end,
		Category:   category,
		Products:   visible,
		Controls:   controls,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
	if total > 0 {
		page.Start = start + 1
	}
	page.Label = fmt.Sprintf("%d-%d of %d", page.Start, page.End, total)

	return page, nil
}
