// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/petalline/storefront/internal/config"
	"github.com/petalline/storefront/internal/domain/cart"
	"github.com/petalline/storefront/internal/domain/checkout"
	"github.com/petalline/storefront/internal/domain/order"
	"github.com/petalline/storefront/internal/domain/product"
	"github.com/petalline/storefront/internal/domain/user"
	"github.com/petalline/storefront/internal/infrastructure/database/memory"
	"github.com/petalline/storefront/internal/infrastructure/database/postgres"
	"github.com/petalline/storefront/internal/infrastructure/database/redis"
	"github.com/petalline/storefront/internal/infrastructure/messaging/kafka"
	"github.com/petalline/storefront/internal/interfaces/http"
	"github.com/petalline/storefront/internal/interfaces/http/handlers"
	"github.com/petalline/storefront/internal/interfaces/http/middleware"
	"github.com/petalline/storefront/internal/interfaces/http/routes"
	"github.com/petalline/storefront/internal/pkg/auth"
	"github.com/petalline/storefront/internal/pkg/logger"
	"github.com/petalline/storefront/internal/pkg/notify"
	"github.com/petalline/storefront/internal/pkg/pdf"
	"github.com/sirupsen/logrus"
)

const producerName = "petalline-storefront"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Logging)
	log.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting storefront")

	ctx := context.Background()
	checks := make(map[string]http.HealthCheck)

	// Cart store backend
	var (
		storage cart.Storage
		bus     cart.Broadcaster
		limiter middleware.Limiter
	)
	switch cfg.Storage.Driver {
	case "redis":
		redisClient, err := redis.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		storage = redis.NewCartStorage(redisClient.GetClient(), cfg.Storage.CartTTL)
		bus = redis.NewChangeBus(redisClient.GetClient(), cfg.Storage.ChangeChannel, log)
		limiter = middleware.NewRedisLimiter(redisClient.GetClient(), cfg.Security.RateLimitPerMinute)
		checks["redis"] = redisClient.Health
	default:
		storage = memory.NewCartStorage()
		bus = memory.NewChangeBus()
		limiter = middleware.NewLocalLimiter(cfg.Security.RateLimitPerMinute, cfg.Security.RateLimitBurst)
	}

	// Catalog
	var source product.Source = product.StaticSource{}
	if cfg.Catalog.Source == "postgres" {
		db, err := postgres.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		migration := postgres.NewMigration(db.GetDB(), log)
		if err := migration.RunAutoMigrations(); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			log.Warnf("Index creation failed: %v", err)
		}
		if cfg.Catalog.Seed {
			if err := migration.SeedCatalog(ctx); err != nil {
				log.Warnf("Catalog seeding failed: %v", err)
			}
		}

		source = product.NewRepository(db.GetDB())
		checks["database"] = db.Health
	}

	products, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	catalog := product.NewCatalog(products, cfg.Catalog.PageSize)
	log.WithField("products", catalog.Len()).Info("Catalog loaded")

	// Cart
	limits := cart.Limits{MaxPerLine: cfg.Pricing.MaxQuantityPerItem, MaxTotal: cfg.Pricing.MaxItemsTotal}
	notifier := notify.NewNotifier(cfg.Notices.SuccessDismiss, cfg.Notices.ErrorDismiss)
	store := cart.NewStore(storage, bus, cfg.Storage.CartKeyPrefix, limits, log)
	carts := cart.NewManager(store, cart.Options{
		Pricing:    cart.NewPricing(cfg.Pricing.TaxRate, cfg.Pricing.ShippingFee, cfg.Pricing.FreeShippingThreshold, cfg.Pricing.RevalidatePromo),
		Limits:     limits,
		Notifier:   notifier,
		Logger:     log,
		SessionTTL: cfg.Storage.CartTTL,
	})

	// Order sink
	var submitter order.Submitter = order.NewSimulatedSubmitter(cfg.Checkout.SubmitDelay, log)
	if cfg.Checkout.OrderSink == "kafka" {
		producer := kafka.NewProducer(cfg.Kafka, log)
		defer producer.Close()
		submitter = order.NewEventSubmitter(producer, producerName, log)
		log.WithField("topic", cfg.Kafka.Topic).Info("Publishing orders to Kafka")
	}

	// Demo accounts
	passwords := auth.NewPasswordManager(cfg.Security.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.App.Name, cfg.JWT.AccessTokenExpiry)
	directory := user.NewDemoDirectory(passwords)
	if cfg.IsDevelopment() {
		if err := directory.SeedDemoUsers(ctx); err != nil {
			log.Warnf("Demo user seeding failed: %v", err)
		}
	}

	productService := product.NewService(catalog, product.NewSteppers(cfg.Storage.CartTTL), carts, cfg.Server.CartPagePath, log)
	checkoutService := checkout.NewService(carts, submitter, log)
	userService := user.NewService(directory, jwtManager, log)

	h := routes.Handlers{
		Product:  handlers.NewProductHandler(productService),
		Cart:     handlers.NewCartHandler(carts, productService, log),
		Checkout: handlers.NewCheckoutHandler(checkoutService, notifier, cfg.Server.CartPagePath),
		Receipt:  handlers.NewReceiptHandler(pdf.NewService(cfg.PDF), log),
		Auth:     handlers.NewAuthHandler(userService),
	}

	server := http.NewServer(cfg, log, h, jwtManager, limiter, checks)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Info("Server shutdown completed")
}
