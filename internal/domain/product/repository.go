// internal/domain/product/repository.go
package product

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Source loads the product list the catalog is built from
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

// StaticSource serves the built-in catalog
type StaticSource struct{}

// Load returns the seeded products
func (StaticSource) Load(ctx context.Context) ([]Product, error) {
	return Seed(), nil
}

// Repository reads and seeds the catalog table
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load reads all products in id order
func (r *Repository) Load(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return products, nil
}

// Count returns the number of stored products
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count catalog: %w", err)
	}
	return count, nil
}

// Seed inserts the given products, leaving existing ids untouched
func (r *Repository) Seed(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&products).Error
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
