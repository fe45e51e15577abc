package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/controllers"
	"storefront-service/database"
	"storefront-service/middleware"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- Document store (optional) ---
	// With no MONGO_URL the service still starts; catalog operations answer
	// with explicit store-unavailable errors instead of empty results.
	var store *database.Store
	var productRepo repository.ProductRepo
	if cfg.MongoURL == "" {
		logger.Warn("MONGO_URL not set, catalog storage disabled")
	} else if err := database.ConnectWithConfig(cfg.MongoURL, cfg.MongoDB); err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	} else {
		logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))
		store = database.NewStore(database.DB)
		productRepo = repository.NewProductRepository(store)
		defer func() {
			if err := database.Close(); err != nil {
				logger.Warn("MongoDB disconnect failed", zap.Error(err))
			}
		}()
	}

	// --- Payment gateway (optional) ---
	// Absence disables checkout only; the catalog keeps working.
	var gateway services.CheckoutGateway
	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, checkout disabled")
	} else {
		gateway = services.NewStripeService(cfg.StripeSecretKey)
	}

	// --- Service wiring ---
	catalog := services.NewCatalogService(productRepo, logger)
	checkout := services.NewCheckoutService(catalog, gateway, cfg.Currency, cfg.CheckoutTimeout, logger)

	productController := controllers.NewProductController(catalog)
	checkoutController := controllers.NewCheckoutController(checkout)
	statusController := controllers.NewStatusController(store)

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestTimeout(60 * time.Second))
	r.Use(cors.New(corsConfig(cfg.AllowOrigins)))

	routes.RegisterRoutes(r, productController, checkoutController, statusController)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		logger.Info("Storefront service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down storefront service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Storefront service stopped gracefully")
}

// corsConfig builds the cross-origin policy. The storefront frontend is
// served from a different origin, so the default is wide open unless the
// deployment narrows it down.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
