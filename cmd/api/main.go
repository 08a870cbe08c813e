package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WambuiJane/visit-stamp-rewards/internal/adapters/cache"
	"github.com/WambuiJane/visit-stamp-rewards/internal/adapters/database"
	"github.com/WambuiJane/visit-stamp-rewards/internal/api/handlers"
	"github.com/WambuiJane/visit-stamp-rewards/internal/api/routes"
	"github.com/WambuiJane/visit-stamp-rewards/internal/application/services"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/providers"
	"github.com/WambuiJane/visit-stamp-rewards/internal/domain/repositories"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/postgres"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/clients/redis"
	"github.com/WambuiJane/visit-stamp-rewards/internal/infrastructure/observability"
	"github.com/WambuiJane/visit-stamp-rewards/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters
	accountAdapter := database.NewAccountAdapter(pgClient)
	customerAdapter := database.NewCustomerAdapter(pgClient)
	businessAdapter := database.NewBusinessAdapter(pgClient)
	visitAdapter := database.NewVisitAdapter(pgClient)
	rewardAdapter := database.NewRewardAdapter(pgClient)

	// Wrap review reads with caching when Redis is available
	var reviewAdapter repositories.ReviewRepository = database.NewReviewAdapter(pgClient)
	if cacheProvider != nil {
		reviewAdapter = database.NewCachedReviewAdapter(reviewAdapter, cacheProvider, metrics)
		log.Println("Review adapter wrapped with caching layer")
	} else {
		log.Println("Review adapter running without cache (Redis unavailable)")
	}

	// Initialize services
	authService := services.NewAuthService(accountAdapter, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	customerService := services.NewCustomerService(customerAdapter)
	businessService := services.NewBusinessService(businessAdapter, visitAdapter, rewardAdapter, reviewAdapter)
	reviewService := services.NewReviewService(reviewAdapter, customerAdapter)
	reviewService.SetMetrics(metrics)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, businessService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Set up router
	router := routes.NewRouter(
		authHandler,
		customerHandler,
		businessHandler,
		reviewHandler,
		authService,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
