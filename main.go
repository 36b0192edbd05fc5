package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"github.com/swaupd/OsBlogApp/internal/handlers"
	"github.com/swaupd/OsBlogApp/internal/middleware"
	"github.com/swaupd/OsBlogApp/internal/repositories"
	"github.com/swaupd/OsBlogApp/internal/services"
	"github.com/swaupd/OsBlogApp/internal/session"
	"github.com/swaupd/OsBlogApp/internal/store"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "osblog.db")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	dbDriver := viper.GetString("DB_DRIVER")
	dbDSN := viper.GetString("DB_DSN")

	// --- Initialize Store ---
	kv, err := store.Open(dbDriver, dbDSN)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	// First-run seeding of the users and cart keys; idempotent.
	if err := store.Bootstrap(kv); err != nil {
		log.Fatalf("Failed to bootstrap store: %v", err)
	}

	// --- Session ---
	// In-memory only: every start of the app begins unauthenticated.
	sess := session.New()

	// --- Initialize Repositories ---
	userRepo := repositories.NewKVUserRepository(kv)
	cartRepo := repositories.NewKVCartRepository(kv)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, sess)
	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(cartService)

	// --- Initialize Handlers ---
	catalogHandler := handlers.NewCatalogHandler()
	authHandler := handlers.NewAuthHandler(authService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cartService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public routes: the blog, the shop catalog, and authentication.
	catalogHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)

	// Cart and checkout need a logged-in user.
	protectedRoutes := apiV1.Group("", middleware.LoginRequired(sess))
	cartHandler.RegisterRoutes(protectedRoutes)
	checkoutHandler.RegisterRoutes(protectedRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
