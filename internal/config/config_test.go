package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Pricing.TaxRate != 0.08 {
		t.Fatalf("expected tax rate 0.08, got %v", cfg.Pricing.TaxRate)
	}
	if cfg.Pricing.ShippingFee != 9.99 || cfg.Pricing.FreeShippingThreshold != 100 {
		t.Fatalf("unexpected shipping defaults: %+v", cfg.Pricing)
	}
	if cfg.Pricing.MaxQuantityPerItem != 99 || cfg.Pricing.MaxItemsTotal != 50 {
		t.Fatalf("unexpected cart caps: %+v", cfg.Pricing)
	}
	if cfg.Catalog.PageSize != 12 {
		t.Fatalf("expected page size 12, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Checkout.SubmitDelay != 2*time.Second {
		t.Fatalf("expected 2s submit delay, got %v", cfg.Checkout.SubmitDelay)
	}
	if cfg.Storage.CartKeyPrefix != "petalline-cart" {
		t.Fatalf("unexpected cart key prefix %q", cfg.Storage.CartKeyPrefix)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("TAX_RATE", "0.1")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Pricing.TaxRate != 0.1 {
		t.Fatalf("expected overridden tax rate, got %v", cfg.Pricing.TaxRate)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Fatalf("expected trimmed broker list, got %v", cfg.Kafka.Brokers)
	}
}

func TestValidateRejectsUnknownDrivers(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	cases := map[string]func(c *Config){
		"storage driver": func(c *Config) { c.Storage.Driver = "sqlite" },
		"catalog source": func(c *Config) { c.Catalog.Source = "mongo" },
		"order sink":     func(c *Config) { c.Checkout.OrderSink = "email" },
		"page size":      func(c *Config) { c.Catalog.PageSize = 0 },
		"short secret":   func(c *Config) { c.JWT.Secret = "short" },
		"key prefix":     func(c *Config) { c.Storage.CartKeyPrefix = "  " },
	}

	for name, mutate := range cases {
		c := *cfg
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
