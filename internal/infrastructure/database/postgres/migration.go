// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"context"
	"fmt"

	"github.com/petalline/storefront/internal/domain/product"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration handles catalog schema and seed data
type Migration struct {
	db     *gorm.DB
	logger logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger logrus.FieldLogger) *Migration {
	return &Migration{
		db:     db,
		logger: logger,
	}
}

// RunAutoMigrations runs GORM auto-migrations for the catalog models
func (m *Migration) RunAutoMigrations() error {
	models := []interface{}{
		&product.Product{},
	}

	for _, model := range models {
		m.logger.WithField("model", fmt.Sprintf("%T", model)).Info("Migrating model")
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	return nil
}

// CreateIndexes creates additional indexes for catalog reads
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_catalog_products_on_sale ON catalog_products(on_sale)",
		"CREATE INDEX IF NOT EXISTS idx_catalog_products_price ON catalog_products(price)",
	}

	for _, stmt := range indexes {
		if err := m.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// SeedCatalog inserts the built-in products when the table is empty
func (m *Migration) SeedCatalog(ctx context.Context) error {
	repo := product.NewRepository(m.db)

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		m.logger.WithField("products", count).Info("Catalog already seeded")
		return nil
	}

	seed := product.Seed()
	if err := repo.Seed(ctx, seed); err != nil {
		return err
	}

	m.logger.WithField("products", len(seed)).Info("Catalog seeded")
	return nil
}
