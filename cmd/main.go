package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"github.com/slooze/foodorder/internal/api/handlers"
	"github.com/slooze/foodorder/internal/api/router"
	"github.com/slooze/foodorder/internal/bootstrap"
	"github.com/slooze/foodorder/internal/config"
	"github.com/slooze/foodorder/internal/middleware"
	"github.com/slooze/foodorder/internal/service"
	"github.com/slooze/foodorder/internal/storage"
	"github.com/slooze/foodorder/internal/token"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize storage
	dsn := storage.BuildDSN(cfg.Database)
	store, err := storage.NewPostgresStorage(dsn)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Migrate any seeded plaintext passwords before serving
	if err := bootstrap.HashPlaintextPasswords(context.Background(), store); err != nil {
		log.Fatalf("Failed to migrate passwords: %v", err)
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "foodorder",
	})

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Rate-limit store: Redis when configured, in-process otherwise
	var rateLimitStore middleware.RateLimitStore
	if cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimitStore = middleware.NewRedisStore(client)
	} else {
		rateLimitStore = middleware.NewMemoryStore()
	}

	// Initialize services, handlers and middleware
	codec := token.NewCodec(cfg.JWT.Secret, cfg.JWT.Expiration)
	catalogService := service.NewCatalogService(store)
	orderService := service.NewOrderService(store)

	authHandler := handlers.NewAuthHandler(store, codec)
	restaurantHandler := handlers.NewRestaurantHandler(catalogService)
	menuItemHandler := handlers.NewMenuItemHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	authMiddleware := middleware.NewAuthMiddleware(codec)
	rateLimiter := middleware.NewRateLimiter(rateLimitStore, cfg.Server.RateLimit.Enabled)

	// Initialize router
	apiRouter := router.NewRouter(
		app,
		authHandler,
		restaurantHandler,
		menuItemHandler,
		orderHandler,
		authMiddleware,
		rateLimiter,
		cfg.Server.RateLimit,
	)

	// Setup routes
	apiRouter.SetupRoutes()

	// Start server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
