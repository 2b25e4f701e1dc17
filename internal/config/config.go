// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Pricing  PricingConfig
	Checkout CheckoutConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Notices  NoticeConfig
	PDF      PDFConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
	CartPagePath   string
}

// StorageConfig selects and tunes the cart store backend
type StorageConfig struct {
	Driver        string // redis or memory
	CartKeyPrefix string
	CartTTL       time.Duration
	ChangeChannel string
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// DatabaseConfig contains database connection configuration.
// Only used when the catalog is sourced from Postgres.
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// CatalogConfig contains product catalog configuration
type CatalogConfig struct {
	Source   string // static or postgres
	PageSize int
	Seed     bool
}

// PricingConfig contains the cart arithmetic constants
type PricingConfig struct {
	TaxRate               float64
	ShippingFee           float64
	FreeShippingThreshold float64
	MaxQuantityPerItem    int
	MaxItemsTotal         int
	RevalidatePromo       bool
}

// CheckoutConfig contains checkout configuration
type CheckoutConfig struct {
	SubmitDelay time.Duration
	OrderSink   string // simulated or kafka
}

// KafkaConfig contains the optional order sink configuration
type KafkaConfig struct {
	Brokers    []string
	Topic      string
	BufferSize int
}

// JWTConfig contains JWT token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	BcryptCost         int
	RateLimitPerMinute int
	RateLimitBurst     int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	SecureCookies      bool
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// NoticeConfig contains how long user-facing notices stay visible
type NoticeConfig struct {
	SuccessDismiss time.Duration
	ErrorDismiss   time.Duration
}

// PDFConfig contains receipt rendering configuration
type PDFConfig struct {
	DPI          uint
	CompanyName  string
	CompanyEmail string
	CompanyPhone string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Petalline Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:           getEnv("APP_PORT", "8080"),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 0),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getEnvAsDuration("SERVER_REQUEST_TIMEOUT", 30*time.Second),
			CartPagePath:   getEnv("CART_PAGE_PATH", "/cart"),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "redis"),
			CartKeyPrefix: getEnv("CART_KEY_PREFIX", "petalline-cart"),
			CartTTL:       getEnvAsDuration("CART_TTL", 30*24*time.Hour),
			ChangeChannel: getEnv("CART_CHANGE_CHANNEL", "petalline:cart-changed"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "petalline"),
			User:         getEnv("DB_USER", "petalline"),
			Password:     getEnv("DB_PASSWORD", "petalline"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 300*time.Second),
		},
		Catalog: CatalogConfig{
			Source:   getEnv("CATALOG_SOURCE", "static"),
			PageSize: getEnvAsInt("CATALOG_PAGE_SIZE", 12),
			Seed:     getEnvAsBool("CATALOG_SEED", true),
		},
		Pricing: PricingConfig{
			TaxRate:               getEnvAsFloat("TAX_RATE", 0.08),
			ShippingFee:           getEnvAsFloat("SHIPPING_FEE", 9.99),
			FreeShippingThreshold: getEnvAsFloat("FREE_SHIPPING_THRESHOLD", 100),
			MaxQuantityPerItem:    getEnvAsInt("MAX_QUANTITY_PER_ITEM", 99),
			MaxItemsTotal:         getEnvAsInt("MAX_ITEMS_TOTAL", 50),
			RevalidatePromo:       getEnvAsBool("PROMO_REVALIDATE", true),
		},
		Checkout: CheckoutConfig{
			SubmitDelay: getEnvAsDuration("CHECKOUT_SUBMIT_DELAY", 2*time.Second),
			OrderSink:   getEnv("ORDER_SINK", "simulated"),
		},
		Kafka: KafkaConfig{
			Brokers:    getEnvAsSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:      getEnv("KAFKA_ORDER_TOPIC", "petalline.orders"),
			BufferSize: getEnvAsInt("KAFKA_BUFFER_SIZE", 64),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "petalline-demo-secret-change-me-in-production"),
			AccessTokenExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRE", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:         getEnvAsInt("BCRYPT_COST", 10),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 300),
			RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 50),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5500"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			SecureCookies:      getEnvAsBool("SECURE_COOKIES", false),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Notices: NoticeConfig{
			SuccessDismiss: getEnvAsDuration("NOTICE_SUCCESS_DISMISS", 3*time.Second),
			ErrorDismiss:   getEnvAsDuration("NOTICE_ERROR_DISMISS", 4*time.Second),
		},
		PDF: PDFConfig{
			DPI:          uint(getEnvAsInt("PDF_DPI", 300)),
			CompanyName:  getEnv("COMPANY_NAME", "Petalline Flowers"),
			CompanyEmail: getEnv("COMPANY_EMAIL", "hello@petalline.example"),
			CompanyPhone: getEnv("COMPANY_PHONE", "+1 555 0100"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required when STORAGE_DRIVER=redis")
		}
	case "memory":
	default:
		return fmt.Errorf("STORAGE_DRIVER must be redis or memory, got %q", c.Storage.Driver)
	}

	switch c.Catalog.Source {
	case "static":
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			return fmt.Errorf("DB_HOST, DB_NAME and DB_USER are required when CATALOG_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be static or postgres, got %q", c.Catalog.Source)
	}

	switch c.Checkout.OrderSink {
	case "simulated":
	case "kafka":
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			return fmt.Errorf("KAFKA_BROKERS and KAFKA_ORDER_TOPIC are required when ORDER_SINK=kafka")
		}
	default:
		return fmt.Errorf("ORDER_SINK must be simulated or kafka, got %q", c.Checkout.OrderSink)
	}

	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}
	if c.Pricing.MaxQuantityPerItem < 1 || c.Pricing.MaxItemsTotal < 1 {
		return fmt.Errorf("MAX_QUANTITY_PER_ITEM and MAX_ITEMS_TOTAL must be at least 1")
	}
	if c.Pricing.TaxRate < 0 || c.Pricing.ShippingFee < 0 {
		return fmt.Errorf("TAX_RATE and SHIPPING_FEE cannot be negative")
	}
	if c.CartKeyPrefixEmpty() {
		return fmt.Errorf("CART_KEY_PREFIX is required")
	}

	// Validate JWT secret
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	// Validate server port
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	return nil
}

// CartKeyPrefixEmpty reports whether the cart key prefix is blank
func (c *Config) CartKeyPrefixEmpty() bool {
	return strings.TrimSpace(c.Storage.CartKeyPrefix) == ""
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
